package seeders

import "inspections-console/internal/entities"

var violationTypesData = []struct {
	Name             string
	PenaltyAmount    string
	CorrectionPeriod int
}{
	{Name: "Нарушение санитарных норм", PenaltyAmount: "1500.00", CorrectionPeriod: 14},
	{Name: "Нарушение правил пожарной безопасности", PenaltyAmount: "3000.00", CorrectionPeriod: 30},
	{Name: "Нарушение требований охраны труда", PenaltyAmount: "4500.00", CorrectionPeriod: 30},
	{Name: "Загрязнение окружающей среды", PenaltyAmount: "25000.00", CorrectionPeriod: 90},
	{Name: "Отсутствие разрешительной документации", PenaltyAmount: "8000.00", CorrectionPeriod: 45},
	{Name: "Нарушение правил хранения опасных веществ", PenaltyAmount: "12000.00", CorrectionPeriod: 60},
}

var inspectorsData = []string{
	"Петров Пётр Петрович",
	"Соколова Анна Викторовна",
	"Лукашевич Дмитрий Сергеевич",
}

var demoEnterprisesData = []entities.Enterprise{
	{Name: "ОАО «Гомельский химический завод»", OwnershipType: "Государственная", Address: "г. Гомель, ул. Химзаводская, 5", DirectorName: "Кравченко Сергей Иванович", DirectorPhone: "+375 232 11-22-33"},
	{Name: "ООО «Полесье-Агро»", OwnershipType: "Частная", Address: "г. Пинск, ул. Ленина, 40", DirectorName: "Шевчук Ольга Николаевна", DirectorPhone: "+375 165 33-44-55"},
	{Name: "ЗАО «Минский молочный комбинат»", OwnershipType: "Частная", Address: "г. Минск, ул. Промышленная, 12", DirectorName: "Жуков Андрей Павлович", DirectorPhone: "+375 17 255-66-77"},
	{Name: "УП «Брестводоканал»", OwnershipType: "Коммунальная", Address: "г. Брест, ул. Московская, 301", DirectorName: "Гончаров Виктор Алексеевич", DirectorPhone: "+375 162 40-50-60"},
	{Name: "ИП Новик А.А.", OwnershipType: "Индивидуальная", Address: "г. Витебск, пр. Строителей, 9", DirectorName: "Новик Алексей Александрович", DirectorPhone: "+375 29 700-80-90"},
	{Name: "ОАО «Могилёвлифтмаш»", OwnershipType: "Государственная", Address: "г. Могилёв, пр. Мира, 42", DirectorName: "Романов Игорь Евгеньевич", DirectorPhone: "+375 222 22-33-44"},
}

// demoInspectionsData ссылается на предприятия по позиции в demoEnterprisesData.
// Суммы подобраны так, чтобы пункты меню 5 и 10 находили записи.
var demoInspectionsData = []struct {
	Enterprise        int
	Inspector         int
	ViolationType     int
	Date              string
	Protocol          string
	ResponsiblePerson string
	PenaltyAmount     string
	PaymentStatus     string
	CorrectionStatus  string
}{
	{0, 0, 3, "2024-01-15", "П-2024-001", "Кравченко С.И.", "250000.00", "Оплачен", "Исправлено"},
	{0, 1, 5, "2024-03-02", "П-2024-014", "Бондарь Т.М.", "180000.00", "Не оплачен", "В процессе"},
	{1, 2, 0, "2024-02-10", "П-2024-007", "Шевчук О.Н.", "1500.00", "Оплачен", "Исправлено"},
	{1, 0, 4, "2024-04-21", "П-2024-022", "Шевчук О.Н.", "64000.00", "Не оплачен", ""},
	{2, 1, 1, "2024-05-05", "П-2024-031", "Жуков А.П.", "3000.00", "Оплачен", "Исправлено"},
	{2, 2, 2, "2024-06-18", "П-2024-040", "Мельник В.В.", "4500.00", "", ""},
	{3, 0, 3, "2024-07-01", "П-2024-046", "Гончаров В.А.", "52000.00", "Не оплачен", "В процессе"},
	{5, 1, 5, "2024-08-12", "П-2024-055", "Романов И.Е.", "410000.00", "Не оплачен", "Не исправлено"},
}
