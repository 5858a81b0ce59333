package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/matchup-predictor/internal/domain/team"
)

type teamTableModel struct {
	ID             int64          `db:"id"`
	PublicID       string         `db:"public_id"`
	Name           string         `db:"name"`
	Abbreviation   string         `db:"abbreviation"`
	Conference     sql.NullString `db:"conference"`
	PrimaryColor   sql.NullString `db:"primary_color"`
	SecondaryColor sql.NullString `db:"secondary_color"`
	LogoURL        sql.NullString `db:"logo_url"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
	DeletedAt      *time.Time     `db:"deleted_at"`
}

type teamInsertModel struct {
	PublicID       string         `db:"public_id"`
	Name           string         `db:"name"`
	Abbreviation   string         `db:"abbreviation"`
	Conference     sql.NullString `db:"conference"`
	PrimaryColor   sql.NullString `db:"primary_color"`
	SecondaryColor sql.NullString `db:"secondary_color"`
	LogoURL        sql.NullString `db:"logo_url"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:             m.PublicID,
		Name:           m.Name,
		Abbreviation:   m.Abbreviation,
		Conference:     m.Conference.String,
		PrimaryColor:   m.PrimaryColor.String,
		SecondaryColor: m.SecondaryColor.String,
		LogoURL:        m.LogoURL.String,
	}
}

func teamInsertModelFromDomain(item team.Team) teamInsertModel {
	return teamInsertModel{
		PublicID:       item.ID,
		Name:           item.Name,
		Abbreviation:   item.Abbreviation,
		Conference:     nullString(item.Conference),
		PrimaryColor:   nullString(item.PrimaryColor),
		SecondaryColor: nullString(item.SecondaryColor),
		LogoURL:        nullString(item.LogoURL),
	}
}
