package entities

import (
	"fmt"
	"strings"
)

type Enterprise struct {
	EnterpriseID  int    `json:"enterprise_id" db:"enterprise_id"`
	Name          string `json:"name" db:"name"`
	OwnershipType string `json:"ownership_type" db:"ownership_type"`
	Address       string `json:"address" db:"address"`
	DirectorName  string `json:"director_name" db:"director_name"`
	DirectorPhone string `json:"director_phone" db:"director_phone"`
}

func (e Enterprise) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Enterprise ID: %d\n", e.EnterpriseID)
	fmt.Fprintf(&b, "Name: %s\n", e.Name)
	fmt.Fprintf(&b, "Ownership Type: %s\n", e.OwnershipType)
	fmt.Fprintf(&b, "Address: %s\n", e.Address)
	fmt.Fprintf(&b, "Director Name: %s\n", e.DirectorName)
	fmt.Fprintf(&b, "Director Phone: %s", e.DirectorPhone)
	return b.String()
}
