package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-roster/internal/domain/player"
	"github.com/riskibarqy/league-roster/internal/domain/roster"
	"github.com/riskibarqy/league-roster/internal/domain/team"
	"github.com/riskibarqy/league-roster/internal/platform/logging"
	"github.com/riskibarqy/league-roster/internal/platform/textfold"
)

// PlayerLocation identifies a player by position in the roster.
type PlayerLocation struct {
	TeamIndex   int
	PlayerIndex int
	TeamName    string
	Player      player.Player
}

type AddPlayerInput struct {
	TeamIndex   int
	Name        string
	KitNumber   int
	DateOfBirth string
	Position    string
}

type UpdatePlayerInput struct {
	TeamIndex   int
	PlayerIndex int
	Field       player.Field
	Value       string
}

type PlayerStatistics struct {
	Player   player.Player
	Age      int
	AgeKnown bool
}

type TeamStatistics struct {
	TeamName    string
	PlayerCount int
	Players     []PlayerStatistics
	// AgesKnown counts the players whose date of birth could be parsed;
	// AverageAge is taken over those only.
	AgesKnown  int
	AverageAge float64
}

// RosterService enforces every roster rule: capacities, store-wide
// uniqueness of team names, player names and kit numbers.
type RosterService struct {
	teamRepo team.Repository
	rules    roster.Rules
	logger   *logging.Logger
	now      func() time.Time
}

func NewRosterService(teamRepo team.Repository, rules roster.Rules, logger *logging.Logger) *RosterService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RosterService{
		teamRepo: teamRepo,
		rules:    rules,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock replaces the clock used for age calculation.
func (s *RosterService) WithClock(now func() time.Time) *RosterService {
	if now != nil {
		s.now = now
	}
	return s
}

func (s *RosterService) Rules() roster.Rules {
	return s.rules
}

func (s *RosterService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListTeams")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list teams")
	}

	return teams, nil
}

// EnrollmentOpen reports whether another team fits in the roster.
func (s *RosterService) EnrollmentOpen(ctx context.Context) (bool, error) {
	count, err := s.teamRepo.Count(ctx)
	if err != nil {
		return false, errors.Wrap(err, "count teams")
	}

	return count < s.rules.MaxTeams, nil
}

func (s *RosterService) GetTeam(ctx context.Context, teamIndex int) (team.Team, error) {
	item, exists, err := s.teamRepo.GetByIndex(ctx, teamIndex)
	if err != nil {
		return team.Team{}, errors.Wrap(err, "get team by index")
	}
	if !exists {
		return team.Team{}, markf(ErrNotFound, "team #%d does not exist", teamIndex+1)
	}

	return item, nil
}

// EnrollTeam appends an empty team and returns its index.
func (s *RosterService) EnrollTeam(ctx context.Context, name string) (idx int, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.EnrollTeam")
	defer func() { finishUsecaseSpan(span, err) }()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "list teams")
	}
	if len(teams) >= s.rules.MaxTeams {
		return 0, s.reject(ctx, "enroll team", markf(ErrCapacityExceeded,
			"the maximum number of teams (%d) has already been enrolled", s.rules.MaxTeams))
	}

	name = strings.TrimSpace(name)
	item := team.Team{Name: name}
	if err := item.Validate(); err != nil {
		return 0, s.reject(ctx, "enroll team", errors.Mark(err, ErrInvalidInput))
	}
	if textfold.Len(name) > s.rules.MaxTeamNameLength {
		return 0, s.reject(ctx, "enroll team", markf(ErrInvalidInput,
			"team name must be at most %d characters", s.rules.MaxTeamNameLength))
	}
	for _, existing := range teams {
		if textfold.Equal(existing.Name, name) {
			return 0, s.reject(ctx, "enroll team", markf(ErrDuplicateTeamName,
				"a team named %q already exists", existing.Name))
		}
	}

	idx, err = s.teamRepo.Create(ctx, item)
	if err != nil {
		return 0, errors.Wrap(err, "create team")
	}

	s.logger.InfoContext(ctx, "team enrolled", "team", name, "team_index", idx)
	return idx, nil
}

// AddPlayer appends a player to the team at in.TeamIndex.
func (s *RosterService) AddPlayer(ctx context.Context, in AddPlayerInput) (loc PlayerLocation, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.AddPlayer")
	defer func() { finishUsecaseSpan(span, err) }()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return PlayerLocation{}, errors.Wrap(err, "list teams")
	}
	if in.TeamIndex < 0 || in.TeamIndex >= len(teams) {
		return PlayerLocation{}, s.reject(ctx, "add player", markf(ErrNotFound,
			"team #%d does not exist", in.TeamIndex+1))
	}
	target := teams[in.TeamIndex]
	if len(target.Players) >= s.rules.MaxPlayersPerTeam {
		return PlayerLocation{}, s.reject(ctx, "add player", markf(ErrCapacityExceeded,
			"team %s already has the maximum number of players (%d)", target.Name, s.rules.MaxPlayersPerTeam))
	}

	item := player.Player{
		Name:        strings.TrimSpace(in.Name),
		KitNumber:   in.KitNumber,
		DateOfBirth: s.freeText(in.DateOfBirth, s.rules.MaxDateOfBirthLength),
		Position:    s.freeText(in.Position, s.rules.MaxPositionLength),
	}
	if err := s.validatePlayerName(item.Name); err != nil {
		return PlayerLocation{}, s.reject(ctx, "add player", err)
	}
	if err := item.Validate(); err != nil {
		return PlayerLocation{}, s.reject(ctx, "add player", errors.Mark(err, ErrInvalidInput))
	}
	if err := nameConflict(teams, item.Name, noSlot); err != nil {
		return PlayerLocation{}, s.reject(ctx, "add player", err)
	}
	if err := kitConflict(teams, item.KitNumber, noSlot); err != nil {
		return PlayerLocation{}, s.reject(ctx, "add player", err)
	}

	playerIdx, err := s.teamRepo.AppendPlayer(ctx, in.TeamIndex, item)
	if err != nil {
		return PlayerLocation{}, errors.Wrap(err, "append player")
	}

	s.logger.InfoContext(ctx, "player added",
		"team", target.Name,
		"player", item.Name,
		"kit_number", item.KitNumber,
	)

	return PlayerLocation{
		TeamIndex:   in.TeamIndex,
		PlayerIndex: playerIdx,
		TeamName:    target.Name,
		Player:      item,
	}, nil
}

// FindPlayer returns the first match, scanning teams in enrollment order and
// players in insertion order.
func (s *RosterService) FindPlayer(ctx context.Context, criterion roster.Criterion) (PlayerLocation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.FindPlayer")
	defer span.End()

	criterion.Name = strings.TrimSpace(criterion.Name)
	if err := criterion.Validate(); err != nil {
		return PlayerLocation{}, errors.Mark(err, ErrInvalidInput)
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return PlayerLocation{}, errors.Wrap(err, "list teams")
	}

	for teamIdx, item := range teams {
		for playerIdx, p := range item.Players {
			if criterion.Matches(p) {
				return PlayerLocation{
					TeamIndex:   teamIdx,
					PlayerIndex: playerIdx,
					TeamName:    item.Name,
					Player:      p,
				}, nil
			}
		}
	}

	s.logger.DebugContext(ctx, "player not found", "criterion", criterion.String())
	return PlayerLocation{}, markf(ErrNotFound, "player not found")
}

// UpdatePlayer overwrites a single field of an existing player. Name and kit
// number uniqueness checks skip the player being updated.
func (s *RosterService) UpdatePlayer(ctx context.Context, in UpdatePlayerInput) (updated player.Player, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.UpdatePlayer")
	defer func() { finishUsecaseSpan(span, err) }()

	if _, ok := player.AllFields[in.Field]; !ok {
		return player.Player{}, s.reject(ctx, "update player", markf(ErrInvalidInput,
			"unknown player field %q", in.Field))
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return player.Player{}, errors.Wrap(err, "list teams")
	}
	if in.TeamIndex < 0 || in.TeamIndex >= len(teams) ||
		in.PlayerIndex < 0 || in.PlayerIndex >= len(teams[in.TeamIndex].Players) {
		return player.Player{}, s.reject(ctx, "update player", markf(ErrNotFound,
			"player #%d of team #%d does not exist", in.PlayerIndex+1, in.TeamIndex+1))
	}

	self := slot{team: in.TeamIndex, player: in.PlayerIndex}
	updated = teams[in.TeamIndex].Players[in.PlayerIndex]

	switch in.Field {
	case player.FieldName:
		name := strings.TrimSpace(in.Value)
		if err := s.validatePlayerName(name); err != nil {
			return player.Player{}, s.reject(ctx, "update player", err)
		}
		if err := nameConflict(teams, name, self); err != nil {
			return player.Player{}, s.reject(ctx, "update player", err)
		}
		updated.Name = name
	case player.FieldKitNumber:
		kit, convErr := strconv.Atoi(strings.TrimSpace(in.Value))
		if convErr != nil {
			return player.Player{}, s.reject(ctx, "update player", markf(ErrInvalidInput,
				"kit number must be a whole number, got %q", strings.TrimSpace(in.Value)))
		}
		if err := player.ValidateKitNumber(kit); err != nil {
			return player.Player{}, s.reject(ctx, "update player", errors.Mark(err, ErrInvalidInput))
		}
		if err := kitConflict(teams, kit, self); err != nil {
			return player.Player{}, s.reject(ctx, "update player", err)
		}
		updated.KitNumber = kit
	case player.FieldDateOfBirth:
		updated.DateOfBirth = s.freeText(in.Value, s.rules.MaxDateOfBirthLength)
	case player.FieldPosition:
		updated.Position = s.freeText(in.Value, s.rules.MaxPositionLength)
	}

	if err := s.teamRepo.ReplacePlayer(ctx, in.TeamIndex, in.PlayerIndex, updated); err != nil {
		return player.Player{}, errors.Wrap(err, "replace player")
	}

	s.logger.InfoContext(ctx, "player updated",
		"team", teams[in.TeamIndex].Name,
		"player", updated.Name,
		"field", string(in.Field),
	)

	return updated, nil
}

// TeamStatistics reports every team in enrollment order with player ages
// computed against the service clock.
func (s *RosterService) TeamStatistics(ctx context.Context) ([]TeamStatistics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.TeamStatistics")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list teams")
	}

	now := s.now()
	out := make([]TeamStatistics, 0, len(teams))
	for _, item := range teams {
		stats := TeamStatistics{
			TeamName:    item.Name,
			PlayerCount: len(item.Players),
		}
		if len(item.Players) == 0 {
			out = append(out, stats)
			continue
		}

		total := 0
		stats.Players = make([]PlayerStatistics, 0, len(item.Players))
		for _, p := range item.Players {
			row := PlayerStatistics{Player: p}
			age, ageErr := p.Age(now)
			if ageErr == nil {
				row.Age = age
				row.AgeKnown = true
				total += age
				stats.AgesKnown++
			} else {
				s.logger.DebugContext(ctx, "age unavailable", "player", p.Name, "error", ageErr)
			}
			stats.Players = append(stats.Players, row)
		}
		if stats.AgesKnown > 0 {
			stats.AverageAge = float64(total) / float64(stats.AgesKnown)
		}

		out = append(out, stats)
	}

	return out, nil
}

func (s *RosterService) validatePlayerName(name string) error {
	if name == "" {
		return markf(ErrInvalidInput, "player name is required")
	}
	if textfold.Len(name) > s.rules.MaxPlayerNameLength {
		return markf(ErrInvalidInput, "player name must be at most %d characters", s.rules.MaxPlayerNameLength)
	}
	return nil
}

// freeText strips the line ending and cuts the value to max runes.
func (s *RosterService) freeText(v string, max int) string {
	return textfold.Truncate(strings.TrimRight(v, "\r\n"), max)
}

func (s *RosterService) reject(ctx context.Context, op string, err error) error {
	s.logger.DebugContext(ctx, "roster operation rejected", "op", op, "error", err)
	return err
}

type slot struct {
	team   int
	player int
}

var noSlot = slot{team: -1, player: -1}

func nameConflict(teams []team.Team, name string, skip slot) error {
	for teamIdx, item := range teams {
		for playerIdx, p := range item.Players {
			if (slot{team: teamIdx, player: playerIdx}) == skip {
				continue
			}
			if p.SameName(name) {
				return markf(ErrDuplicatePlayerName,
					"a player named %q already exists in team %s", p.Name, item.Name)
			}
		}
	}
	return nil
}

func kitConflict(teams []team.Team, kit int, skip slot) error {
	for teamIdx, item := range teams {
		for playerIdx, p := range item.Players {
			if (slot{team: teamIdx, player: playerIdx}) == skip {
				continue
			}
			if p.KitNumber == kit {
				return markf(ErrDuplicateKitNumber,
					"kit number %d is already used by %s in team %s", kit, p.Name, item.Name)
			}
		}
	}
	return nil
}
