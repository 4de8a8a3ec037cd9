package routes

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inspections-console/internal/controllers"
	"inspections-console/internal/dto"
	"inspections-console/internal/services"
)

// labelService отвечает на каждую операцию её собственным заголовком.
type labelService struct{ called []string }

func (s *labelService) result(label string) (*dto.ResultDTO, error) {
	s.called = append(s.called, label)
	return &dto.ResultDTO{Label: label}, nil
}

func (s *labelService) SelectAllEnterprises(context.Context) (*dto.ResultDTO, error) {
	return s.result(services.LabelSelectAll)
}
func (s *labelService) FilterViolationTypes(context.Context) (*dto.ResultDTO, error) {
	return s.result(services.LabelFilter)
}
func (s *labelService) GroupInspectionsByViolationType(context.Context) (*dto.ResultDTO, error) {
	return s.result(services.LabelGroup)
}
func (s *labelService) SelectEnterpriseInspections(context.Context) (*dto.ResultDTO, error) {
	return s.result(services.LabelJoin)
}
func (s *labelService) FilterEnterprisePenaltyTotals(context.Context) (*dto.ResultDTO, error) {
	return s.result(services.LabelJoinFilter)
}
func (s *labelService) InsertEnterprise(context.Context) (*dto.ResultDTO, error) {
	return s.result(services.LabelInsertOne)
}
func (s *labelService) InsertInspection(context.Context) (*dto.ResultDTO, error) {
	return s.result(services.LabelInsertMany)
}
func (s *labelService) DeleteLastEnterprise(context.Context) (*dto.ResultDTO, error) {
	return s.result(services.LabelDeleteOne)
}
func (s *labelService) DeleteLastInspection(context.Context) (*dto.ResultDTO, error) {
	return s.result(services.LabelDeleteMany)
}
func (s *labelService) RaisePenaltiesForTopEnterprises(context.Context) (*dto.ResultDTO, error) {
	return s.result(services.LabelUpdate)
}

func TestRegisterMenu_KeysMatchOperations(t *testing.T) {
	menu := controllers.NewMenuController(strings.NewReader(""), &bytes.Buffer{}, zap.NewNop())
	svc := &labelService{}
	RegisterMenu(menu, svc)

	commands := menu.Commands()
	require.Len(t, commands, 10)

	for i, cmd := range commands {
		result, err := cmd.Handler(context.Background())
		require.NoError(t, err)
		assert.Equal(t, cmd.Title, result.Label, "пункт %s", cmd.Key)
		assert.Equal(t, svc.called[i], cmd.Title)
	}
	assert.Equal(t, "10", commands[9].Key)
	assert.Equal(t, services.LabelUpdate, commands[9].Title)
}
