package team

import "fmt"

// Team is the display record for a club. The engine never reads it.
type Team struct {
	ID             string
	Name           string
	Abbreviation   string
	Conference     string
	PrimaryColor   string
	SecondaryColor string
	LogoURL        string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
