// Package console drives the roster through a line-oriented text menu.
package console

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/league-roster/internal/domain/player"
	"github.com/riskibarqy/league-roster/internal/domain/roster"
	"github.com/riskibarqy/league-roster/internal/platform/logging"
	"github.com/riskibarqy/league-roster/internal/usecase"
)

const (
	menuEnrollTeam = iota + 1
	menuAddPlayer
	menuSearchPlayer
	menuStatistics
	menuExit
)

type Handler struct {
	rosterService *usecase.RosterService
	in            *lineReader
	out           io.Writer
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(rosterService *usecase.RosterService, in io.Reader, out io.Writer, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		rosterService: rosterService,
		in:            newLineReader(in),
		out:           out,
		logger:        logger,
		validator:     newValidator(),
	}
}

// Run shows the menu until the user exits or input ends. Rejected
// operations are reported and the loop continues; only I/O failures end it
// with an error.
func (h *Handler) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		if err := h.render(renderMenu); err != nil {
			return err
		}

		choice, ok, err := h.in.readInt()
		if err != nil {
			return h.stop(ctx, err)
		}
		if !ok {
			if err := h.invalidInput(); err != nil {
				return err
			}
			continue
		}

		switch choice {
		case menuEnrollTeam:
			err = h.enrollTeam(ctx)
		case menuAddPlayer:
			err = h.addPlayer(ctx)
		case menuSearchPlayer:
			err = h.searchAndUpdatePlayer(ctx)
		case menuStatistics:
			err = h.displayStatistics(ctx)
		case menuExit:
			h.logger.InfoContext(ctx, "console exit requested")
			return h.printf("Thank you for using the League Team Application.\nExiting...\n")
		default:
			err = h.invalidInput()
		}
		if err != nil {
			return h.stop(ctx, err)
		}
	}
}

func (h *Handler) stop(ctx context.Context, err error) error {
	if errors.Is(err, io.EOF) {
		h.logger.InfoContext(ctx, "console input closed")
		return nil
	}

	h.logger.ErrorContext(ctx, "console loop failed", "error", err)
	return err
}

func (h *Handler) enrollTeam(ctx context.Context) error {
	open, err := h.rosterService.EnrollmentOpen(ctx)
	if err != nil {
		return h.reportError(ctx, err)
	}
	if !open {
		return h.printf("The maximum number of teams has already been enrolled.\n")
	}

	if err := h.printf("Enter the name of the team: "); err != nil {
		return err
	}
	name, err := h.in.readText(h.rosterService.Rules().MaxTeamNameLength)
	if err != nil {
		return err
	}

	req := enrollTeamRequest{Name: name}
	if err := h.validateRequest(ctx, req); err != nil {
		return h.reportError(ctx, err)
	}

	if _, err := h.rosterService.EnrollTeam(ctx, req.Name); err != nil {
		return h.reportError(ctx, err)
	}

	return h.printf("Team %s has been enrolled successfully.\n", req.Name)
}

func (h *Handler) addPlayer(ctx context.Context) error {
	teamIdx, selected, err := h.selectTeam(ctx, "No teams have been enrolled yet. Please enroll a team first.\n")
	if err != nil || !selected {
		return err
	}

	rules := h.rosterService.Rules()
	current, err := h.rosterService.GetTeam(ctx, teamIdx)
	if err != nil {
		return h.reportError(ctx, err)
	}
	if len(current.Players) >= rules.MaxPlayersPerTeam {
		return h.printf("This team already has the maximum number of players (%d).\n", rules.MaxPlayersPerTeam)
	}

	req := addPlayerRequest{TeamIndex: teamIdx}

	if err := h.printf("Enter player name (max %d characters): ", rules.MaxPlayerNameLength); err != nil {
		return err
	}
	if req.Name, err = h.in.readText(rules.MaxPlayerNameLength); err != nil {
		return err
	}

	if err := h.printf("Enter kit number (%d-%d): ", player.MinKitNumber, player.MaxKitNumber); err != nil {
		return err
	}
	kit, ok, err := h.in.readInt()
	if err != nil {
		return err
	}
	if !ok {
		return h.printf("Kit number must be a whole number between %d and %d.\n", player.MinKitNumber, player.MaxKitNumber)
	}
	req.KitNumber = kit

	if err := h.printf("Enter date of birth (DD/MM/YYYY): "); err != nil {
		return err
	}
	if req.DateOfBirth, err = h.in.readText(rules.MaxDateOfBirthLength); err != nil {
		return err
	}

	if err := h.printf("Enter player position (e.g., Forward): "); err != nil {
		return err
	}
	if req.Position, err = h.in.readText(rules.MaxPositionLength); err != nil {
		return err
	}

	if err := h.validateRequest(ctx, req); err != nil {
		return h.reportError(ctx, err)
	}

	loc, err := h.rosterService.AddPlayer(ctx, usecase.AddPlayerInput{
		TeamIndex:   req.TeamIndex,
		Name:        req.Name,
		KitNumber:   req.KitNumber,
		DateOfBirth: req.DateOfBirth,
		Position:    req.Position,
	})
	if err != nil {
		if reportErr := h.reportError(ctx, err); reportErr != nil {
			return reportErr
		}
		if usecase.IsDuplicate(err) {
			return h.printConflictListing(ctx)
		}
		return nil
	}

	return h.printf("Player %s has been successfully added to team %s.\n", loc.Player.Name, loc.TeamName)
}

// selectTeam lists the teams 1-based and returns the chosen 0-based index.
// selected is false when there was nothing to choose or the choice was
// invalid; the user has already been told why.
func (h *Handler) selectTeam(ctx context.Context, emptyMessage string) (teamIdx int, selected bool, err error) {
	teams, err := h.rosterService.ListTeams(ctx)
	if err != nil {
		return 0, false, h.reportError(ctx, err)
	}
	if len(teams) == 0 {
		return 0, false, h.printf("%s", emptyMessage)
	}

	if err := h.render(func(w io.Writer) { renderTeamChoices(w, teams) }); err != nil {
		return 0, false, err
	}

	choice, ok, err := h.in.readInt()
	if err != nil {
		return 0, false, err
	}
	if !ok || choice < 1 || choice > len(teams) {
		return 0, false, h.invalidInput()
	}

	return choice - 1, true, nil
}

func (h *Handler) searchAndUpdatePlayer(ctx context.Context) error {
	teams, err := h.rosterService.ListTeams(ctx)
	if err != nil {
		return h.reportError(ctx, err)
	}
	if len(teams) == 0 {
		return h.printf("No teams have been enrolled yet.\n")
	}

	if err := h.printf("Search for a player by:\n1. Kit Number\n2. Name\n"); err != nil {
		return err
	}
	option, ok, err := h.in.readInt()
	if err != nil {
		return err
	}

	var req searchPlayerRequest
	switch {
	case ok && option == 1:
		req.ByKitNumber = true
		if err := h.printf("Enter the kit number: "); err != nil {
			return err
		}
		kit, isNumber, err := h.in.readInt()
		if err != nil {
			return err
		}
		if !isNumber {
			return h.invalidInput()
		}
		req.KitNumber = kit
	case ok && option == 2:
		if err := h.printf("Enter the player's name: "); err != nil {
			return err
		}
		if req.Name, err = h.in.readText(h.rosterService.Rules().MaxPlayerNameLength); err != nil {
			return err
		}
	default:
		return h.invalidInput()
	}

	if err := h.validateRequest(ctx, req); err != nil {
		return h.reportError(ctx, err)
	}

	criterion := roster.NameCriterion(req.Name)
	if req.ByKitNumber {
		criterion = roster.KitNumberCriterion(req.KitNumber)
	}

	loc, err := h.rosterService.FindPlayer(ctx, criterion)
	if errors.Is(err, usecase.ErrNotFound) {
		return h.printf("Player not found.\n")
	}
	if err != nil {
		return h.reportError(ctx, err)
	}

	if err := h.render(func(w io.Writer) { renderPlayerFound(w, loc) }); err != nil {
		return err
	}

	if err := h.printf("Do you want to update player details? (1 for Yes, 0 for No): "); err != nil {
		return err
	}
	answer, ok, err := h.in.readInt()
	if err != nil {
		return err
	}
	if !ok || answer != 1 {
		return nil
	}

	return h.updatePlayer(ctx, loc)
}

var updateChoices = map[int]struct {
	field  player.Field
	prompt string
	done   string
}{
	1: {field: player.FieldName, prompt: "Enter new name: ", done: "Player name updated successfully.\n"},
	2: {field: player.FieldKitNumber, prompt: "Enter new kit number: ", done: "Kit number updated successfully.\n"},
	3: {field: player.FieldDateOfBirth, prompt: "Enter new DOB (DD/MM/YYYY): ", done: "DOB updated successfully.\n"},
	4: {field: player.FieldPosition, prompt: "Enter new position: ", done: "Position updated successfully.\n"},
}

func (h *Handler) updatePlayer(ctx context.Context, loc usecase.PlayerLocation) error {
	if err := h.printf("1. Update Name\n2. Update Kit Number\n3. Update DOB\n4. Update Position\nEnter your choice: "); err != nil {
		return err
	}
	choice, ok, err := h.in.readInt()
	if err != nil {
		return err
	}
	item, known := updateChoices[choice]
	if !ok || !known {
		return h.invalidInput()
	}

	if err := h.printf("%s", item.prompt); err != nil {
		return err
	}
	value, err := h.in.readText(h.maxLength(item.field))
	if err != nil {
		return err
	}

	req := updatePlayerRequest{Field: string(item.field), Value: value}
	if err := h.validateRequest(ctx, req); err != nil {
		return h.reportError(ctx, err)
	}

	_, err = h.rosterService.UpdatePlayer(ctx, usecase.UpdatePlayerInput{
		TeamIndex:   loc.TeamIndex,
		PlayerIndex: loc.PlayerIndex,
		Field:       item.field,
		Value:       req.Value,
	})
	if err != nil {
		return h.reportError(ctx, err)
	}

	return h.printf("%s", item.done)
}

func (h *Handler) maxLength(field player.Field) int {
	rules := h.rosterService.Rules()
	switch field {
	case player.FieldName:
		return rules.MaxPlayerNameLength
	case player.FieldDateOfBirth:
		return rules.MaxDateOfBirthLength
	case player.FieldPosition:
		return rules.MaxPositionLength
	default:
		// kit numbers are parsed by the service; cap only guards absurd lines
		return 16
	}
}

func (h *Handler) displayStatistics(ctx context.Context) error {
	stats, err := h.rosterService.TeamStatistics(ctx)
	if err != nil {
		return h.reportError(ctx, err)
	}
	if len(stats) == 0 {
		return h.printf("No teams have been enrolled yet.\n")
	}

	return h.render(func(w io.Writer) { renderStatistics(w, stats) })
}

func (h *Handler) printConflictListing(ctx context.Context) error {
	teams, err := h.rosterService.ListTeams(ctx)
	if err != nil {
		return h.reportError(ctx, err)
	}

	return h.render(func(w io.Writer) { renderConflictListing(w, teams) })
}

// reportError prints a domain rejection. Errors outside the roster taxonomy
// are logged as failures but still only reported, never fatal.
func (h *Handler) reportError(ctx context.Context, err error) error {
	if !isRosterError(err) {
		h.logger.ErrorContext(ctx, "roster operation failed", "error", err)
	}

	return h.printf("%s\n", sentence(err.Error()))
}

func isRosterError(err error) bool {
	return errors.Is(err, usecase.ErrInvalidInput) ||
		errors.Is(err, usecase.ErrNotFound) ||
		errors.Is(err, usecase.ErrCapacityExceeded) ||
		usecase.IsDuplicate(err)
}

func (h *Handler) invalidInput() error {
	return h.printf("Invalid input. Please try again.\n")
}

func (h *Handler) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(h.out, format, args...)
	return err
}
