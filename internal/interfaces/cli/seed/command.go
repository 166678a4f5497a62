package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"orgjet/internal/domain/request"
	vo "orgjet/internal/domain/request/valueobjects"
	"orgjet/internal/domain/requesttype"
	"orgjet/internal/domain/team"
	"orgjet/internal/domain/user"
	"orgjet/internal/infrastructure/config"
	"orgjet/internal/infrastructure/database"
	"orgjet/internal/infrastructure/migration"
	"orgjet/internal/infrastructure/repository"
	"orgjet/internal/shared/constants"
	"orgjet/internal/shared/errors"
	"orgjet/internal/shared/logger"
)

var (
	env         string
	fixturePath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load development fixtures",
		Long:  `Create demo teams, users, request types and a couple of sample requests. Safe to run repeatedly; existing rows are left alone. With --fixture, seeds from a YAML file instead of the built-in demo data.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&fixturePath, "fixture", "f", "", "Path to a YAML fixture file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migration.AutoMigrate(database.Get(), log); err != nil {
		return err
	}

	s := &seeder{
		teamRepo:    repository.NewTeamRepository(database.Get()),
		userRepo:    repository.NewUserRepository(database.Get()),
		typeRepo:    repository.NewRequestTypeRepository(database.Get()),
		requestRepo: repository.NewRequestRepository(database.Get()),
		eventRepo:   repository.NewRequestEventRepository(database.Get()),
		bcryptCost:  cfg.Auth.Password.BcryptCost,
		logger:      log,
	}
	if fixturePath != "" {
		fx, err := loadFixture(fixturePath)
		if err != nil {
			return err
		}
		return s.runFixture(context.Background(), fx)
	}

	return s.run(context.Background())
}

// fixture is the YAML shape accepted by --fixture. Users get the default
// password; a type schema is written as an inline JSON Schema object.
type fixture struct {
	Teams []struct {
		Name string `yaml:"name"`
	} `yaml:"teams"`
	Users []struct {
		Name  string `yaml:"name"`
		Email string `yaml:"email"`
		Role  string `yaml:"role"`
		Team  string `yaml:"team"`
	} `yaml:"users"`
	Types []struct {
		Name       string                 `yaml:"name"`
		Schema     map[string]interface{} `yaml:"schema"`
		SLAMinutes *int                   `yaml:"slaMinutes"`
	} `yaml:"types"`
}

func loadFixture(path string) (*fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file: %w", err)
	}

	var fx fixture
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		return nil, fmt.Errorf("failed to parse fixture file: %w", err)
	}
	return &fx, nil
}

type seeder struct {
	teamRepo    *repository.TeamRepository
	userRepo    *repository.UserRepository
	typeRepo    *repository.RequestTypeRepository
	requestRepo *repository.RequestRepository
	eventRepo   *repository.RequestEventRepository
	bcryptCost  int
	logger      logger.Interface
}

func (s *seeder) run(ctx context.Context) error {
	facilities, err := s.ensureTeam(ctx, "Facilities")
	if err != nil {
		return err
	}
	itTeam, err := s.ensureTeam(ctx, "IT")
	if err != nil {
		return err
	}

	requester, err := s.ensureUser(ctx, "Riley Park", "riley@orgjet.local", constants.RoleRequester, facilities.ID())
	if err != nil {
		return err
	}
	coordinator, err := s.ensureUser(ctx, "Casey Liu", "casey@orgjet.local", constants.RoleCoordinator, facilities.ID())
	if err != nil {
		return err
	}
	if _, err := s.ensureUser(ctx, "Sam Ortiz", "sam@orgjet.local", constants.RoleAssignee, itTeam.ID()); err != nil {
		return err
	}
	if _, err := s.ensureUser(ctx, "Alex Kim", "alex@orgjet.local", constants.RoleAdmin, 0); err != nil {
		return err
	}

	roomSchema := json.RawMessage(`{
		"type": "object",
		"properties": {
			"room": {"type": "string"},
			"floor": {"type": "integer"}
		},
		"required": ["room"]
	}`)
	sla := 2880
	repairType, err := s.ensureType(ctx, "Repair", roomSchema, &sla)
	if err != nil {
		return err
	}
	if _, err := s.ensureType(ctx, "Access", nil, nil); err != nil {
		return err
	}

	if err := s.ensureSampleRequest(ctx, "Projector in 3B flickers", "The ceiling projector in meeting room 3B flickers after ten minutes of use.", repairType.ID(), requester.ID(), facilities.ID(), map[string]interface{}{"room": "3B", "floor": 3}); err != nil {
		return err
	}
	if err := s.ensureSampleRequest(ctx, "Lobby door badge reader loose", "The badge reader by the east lobby entrance wobbles and sometimes misreads.", repairType.ID(), coordinator.ID(), facilities.ID(), map[string]interface{}{"room": "lobby east"}); err != nil {
		return err
	}

	s.logger.Infow("seed completed")
	return nil
}

func (s *seeder) runFixture(ctx context.Context, fx *fixture) error {
	teamsByName := map[string]uint{}
	for _, t := range fx.Teams {
		created, err := s.ensureTeam(ctx, t.Name)
		if err != nil {
			return err
		}
		teamsByName[t.Name] = created.ID()
	}

	for _, u := range fx.Users {
		teamID := teamsByName[u.Team]
		if _, err := s.ensureUser(ctx, u.Name, u.Email, u.Role, teamID); err != nil {
			return err
		}
	}

	for _, rt := range fx.Types {
		var schema json.RawMessage
		if rt.Schema != nil {
			raw, err := json.Marshal(rt.Schema)
			if err != nil {
				return fmt.Errorf("failed to encode schema for type %s: %w", rt.Name, err)
			}
			schema = raw
		}
		if _, err := s.ensureType(ctx, rt.Name, schema, rt.SLAMinutes); err != nil {
			return err
		}
	}

	s.logger.Infow("fixture seed completed", "teams", len(fx.Teams), "users", len(fx.Users), "types", len(fx.Types))
	return nil
}

func (s *seeder) ensureTeam(ctx context.Context, name string) (*team.Team, error) {
	existing, err := s.teamRepo.FindByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.IsNotFoundError(err) {
		return nil, err
	}

	t, err := team.NewTeam(name)
	if err != nil {
		return nil, err
	}
	if err := s.teamRepo.Save(ctx, t); err != nil {
		return nil, err
	}
	s.logger.Infow("seeded team", "name", name)
	return t, nil
}

func (s *seeder) ensureUser(ctx context.Context, name, email, role string, teamID uint) (*user.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.IsNotFoundError(err) {
		return nil, err
	}

	u, err := user.NewUser(name, email, "changeme123", role, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	u.SetTeam(teamID)
	if err := s.userRepo.Save(ctx, u); err != nil {
		return nil, err
	}
	s.logger.Infow("seeded user", "email", email, "role", role)
	return u, nil
}

func (s *seeder) ensureType(ctx context.Context, name string, schema json.RawMessage, slaMinutes *int) (*requesttype.RequestType, error) {
	existing, err := s.typeRepo.FindByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.IsNotFoundError(err) {
		return nil, err
	}

	rt, err := requesttype.NewRequestType(name, schema, slaMinutes)
	if err != nil {
		return nil, err
	}
	if err := s.typeRepo.Save(ctx, rt); err != nil {
		return nil, err
	}
	s.logger.Infow("seeded request type", "name", name)
	return rt, nil
}

func (s *seeder) ensureSampleRequest(ctx context.Context, title, description string, typeID, creatorID, teamID uint, metadata map[string]interface{}) error {
	existing, err := s.requestRepo.List(ctx, request.Filter{Search: title})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	req, err := request.NewRequest(title, description, typeID, vo.DefaultPriority, creatorID)
	if err != nil {
		return err
	}
	req.SetTeam(teamID)
	req.SetMetadata(metadata)
	if err := s.requestRepo.Save(ctx, req); err != nil {
		return err
	}

	ev, err := request.NewCreatedEvent(req.ID(), creatorID, request.CreatedPayload{Title: title})
	if err != nil {
		return err
	}
	if err := s.eventRepo.Save(ctx, ev); err != nil {
		return err
	}

	s.logger.Infow("seeded request", "title", title)
	return nil
}
