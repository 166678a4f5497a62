package team

import (
	"fmt"
	"time"

	"orgjet/internal/shared/biztime"
)

type Team struct {
	id        uint
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func NewTeam(name string) (*Team, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	now := biztime.NowUTC()
	return &Team{
		name:      name,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTeam(id uint, name string, createdAt, updatedAt time.Time) (*Team, error) {
	if id == 0 {
		return nil, fmt.Errorf("team ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	return &Team{
		id:        id,
		name:      name,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (t *Team) ID() uint             { return t.id }
func (t *Team) Name() string         { return t.name }
func (t *Team) CreatedAt() time.Time { return t.createdAt }
func (t *Team) UpdatedAt() time.Time { return t.updatedAt }

func (t *Team) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("team ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("team ID cannot be zero")
	}
	t.id = id
	return nil
}
