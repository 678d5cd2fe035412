package console

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/riskibarqy/league-roster/internal/domain/team"
	"github.com/riskibarqy/league-roster/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

// render builds a block in a pooled buffer and writes it in one call.
func (h *Handler) render(fn func(w io.Writer)) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	fn(buf)

	_, err := h.out.Write(buf.B)
	return err
}

func renderMenu(w io.Writer) {
	fmt.Fprint(w, "\n--- League Team Application ---\n")
	fmt.Fprint(w, "1. Enroll a New Team\n")
	fmt.Fprint(w, "2. Add a Player to a Team\n")
	fmt.Fprint(w, "3. Search and Update Player Details\n")
	fmt.Fprint(w, "4. Display Team Statistics\n")
	fmt.Fprint(w, "5. Exit Application\n")
	fmt.Fprint(w, "Enter your choice: ")
}

func renderTeamChoices(w io.Writer, teams []team.Team) {
	fmt.Fprint(w, "Select a team:\n")
	for i, item := range teams {
		fmt.Fprintf(w, "%d. %s\n", i+1, item.Name)
	}
}

func renderPlayerFound(w io.Writer, loc usecase.PlayerLocation) {
	fmt.Fprintf(w, "Player found in team %s:\n", loc.TeamName)
	fmt.Fprintf(w, "Player Name: %s\n", loc.Player.Name)
	fmt.Fprintf(w, "Kit Number: %d\n", loc.Player.KitNumber)
	fmt.Fprintf(w, "DOB: %s\n", loc.Player.DateOfBirth)
	fmt.Fprintf(w, "Position: %s\n", loc.Player.Position)
}

// renderConflictListing shows every enrolled player so the user can pick a
// free name and kit number.
func renderConflictListing(w io.Writer, teams []team.Team) {
	fmt.Fprint(w, "The following players are already enrolled:\n")
	for _, item := range teams {
		fmt.Fprintf(w, "Team %s\n", item.Name)
		if len(item.Players) == 0 {
			fmt.Fprint(w, "  (no players)\n")
			continue
		}
		for j, p := range item.Players {
			fmt.Fprintf(w, "  Player %d: %s, Kit Number: %d\n", j+1, p.Name, p.KitNumber)
		}
	}
}

func renderStatistics(w io.Writer, stats []usecase.TeamStatistics) {
	for _, item := range stats {
		fmt.Fprintf(w, "\nTeam: %s\n", item.TeamName)
		fmt.Fprintf(w, "Number of players: %d\n", item.PlayerCount)

		if item.PlayerCount == 0 {
			fmt.Fprint(w, "No players in this team.\n")
			continue
		}

		for j, row := range item.Players {
			age := "unknown"
			if row.AgeKnown {
				age = fmt.Sprintf("%d", row.Age)
			}
			fmt.Fprintf(w, "  Player %d: Name: %s, Kit Number: %d, DOB: %s, Position: %s, Age: %s\n",
				j+1, row.Player.Name, row.Player.KitNumber, row.Player.DateOfBirth, row.Player.Position, age)
		}

		if item.AgesKnown == 0 {
			fmt.Fprint(w, "Average age unavailable: no readable dates of birth.\n")
			continue
		}
		fmt.Fprintf(w, "Average age of players in this team: %.2f years\n", item.AverageAge)
	}
}

// sentence capitalises msg and ends it with a period.
func sentence(msg string) string {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return msg
	}

	r, size := utf8.DecodeRuneInString(msg)
	msg = string(unicode.ToUpper(r)) + msg[size:]
	if !strings.HasSuffix(msg, ".") {
		msg += "."
	}
	return msg
}
