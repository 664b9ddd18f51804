package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mww/starter_optimizer/controller"
	"github.com/mww/starter_optimizer/db"
	"github.com/mww/starter_optimizer/logger"
	"github.com/mww/starter_optimizer/model"
	"github.com/mww/starter_optimizer/platforms/espn"
	"github.com/mww/starter_optimizer/platforms/fetch"
	"github.com/mww/starter_optimizer/platforms/sleeper"
	"github.com/unrolled/render"
)

// Highest week the forms accept, regular season plus playoffs.
const maxWeek = 22

// slotInput is one of the slot count fields on the lineup form.
type slotInput struct {
	Param string
	Slot  model.Slot
	Min   int
	Max   int
	Value int
}

var slotInputs = []slotInput{
	{Param: "qb", Slot: model.SLOT_QB, Min: 1, Max: 3},
	{Param: "rb", Slot: model.SLOT_RB, Min: 1, Max: 5},
	{Param: "wr", Slot: model.SLOT_WR, Min: 1, Max: 5},
	{Param: "te", Slot: model.SLOT_TE, Min: 1, Max: 3},
	{Param: "flex", Slot: model.SLOT_FLEX, Min: 0, Max: 3},
	{Param: "dst", Slot: model.SLOT_DST, Min: 0, Max: 2},
	{Param: "k", Slot: model.SLOT_K, Min: 0, Max: 2},
}

type slotRow struct {
	Slot    model.Slot
	Players []model.Player
	Open    int
}

type lineupPage struct {
	Result   *model.LineupResult
	Inputs   []slotInput
	Rows     []slotRow
	Total    float64
	Open     int
	Starters int
}

type matchupsPage struct {
	League   model.League
	Week     int
	Matchups []model.Matchup
}

type logsPage struct {
	League model.League
	Totals []model.WeeklyTotal
}

func lineupHandler(ctrl controller.C, league model.League, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseLineupRequest(r.URL.Query(), league)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		res, err := ctrl.OptimizeLineup(r.Context(), req)
		if err != nil {
			renderError(w, render, err)
			return
		}

		render.HTML(w, http.StatusOK, "lineup", newLineupPage(res))
	}
}

func lineupAPIHandler(ctrl controller.C, league model.League, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseLineupRequest(r.URL.Query(), league)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		res, err := ctrl.OptimizeLineup(r.Context(), req)
		if err != nil {
			render.JSON(w, errorStatus(err), map[string]string{"error": err.Error()})
			return
		}

		render.JSON(w, http.StatusOK, toLineupJSON(res))
	}
}

func slotsAPIHandler(ctrl controller.C, league model.League, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slots, err := ctrl.GetLeagueSlots(r.Context(), league)
		if err != nil {
			render.JSON(w, errorStatus(err), map[string]string{"error": err.Error()})
			return
		}

		render.JSON(w, http.StatusOK, toSlotCountsJSON(slots))
	}
}

func matchupsHandler(ctrl controller.C, league model.League, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, err := parseWeek(r.URL.Query().Get("week"))
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		matchups, err := ctrl.GetMatchups(r.Context(), league, week)
		if err != nil {
			renderError(w, render, err)
			return
		}

		page := matchupsPage{League: league, Week: week, Matchups: matchups}
		if len(matchups) > 0 {
			page.Week = matchups[0].Week
		}
		render.HTML(w, http.StatusOK, "matchups", page)
	}
}

func weeklyLogHandler(ctrl controller.C, league model.League, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		totals, err := ctrl.ListWeeklyTotals(r.Context(), league)
		if err != nil {
			renderError(w, render, err)
			return
		}

		render.HTML(w, http.StatusOK, "logs", logsPage{League: league, Totals: totals})
	}
}

func recordWeeklyTotalHandler(ctrl controller.C, league model.League, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		req, err := parseLineupRequest(r.PostForm, league)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		total, err := ctrl.RecordWeeklyTotal(r.Context(), req)
		if err != nil {
			renderError(w, render, err)
			return
		}

		logger.WithComponent("web").
			WithField("week", total.Week).
			Info("weekly total recorded from the dashboard")
		http.Redirect(w, r, "/logs", http.StatusSeeOther)
	}
}

// parseLineupRequest reads the week and the slot counts. Without any slot
// count the league's own settings are used.
func parseLineupRequest(values url.Values, league model.League) (controller.LineupRequest, error) {
	req := controller.LineupRequest{League: league}

	week, err := parseWeek(values.Get("week"))
	if err != nil {
		return req, err
	}
	req.Week = week

	defaults := make(map[model.Slot]int)
	for _, s := range model.DefaultSlots() {
		defaults[s.Slot] = s.Count
	}

	slots := make([]model.SlotCount, 0, len(slotInputs))
	found := false
	for _, in := range slotInputs {
		n := defaults[in.Slot]
		if v := values.Get(in.Param); v != "" {
			found = true
			if n, err = strconv.Atoi(v); err != nil {
				return req, fmt.Errorf("%s must be a number, got %q", in.Param, v)
			}
			if n < in.Min || n > in.Max {
				return req, fmt.Errorf("%s must be between %d and %d, got %d", in.Param, in.Min, in.Max, n)
			}
		}
		slots = append(slots, model.SlotCount{Slot: in.Slot, Count: n})
	}
	if found {
		req.Slots = slots
	}

	return req, nil
}

// An empty week means the current week.
func parseWeek(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	week, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("week must be a number, got %q", v)
	}
	if week < 0 || week > maxWeek {
		return 0, fmt.Errorf("week must be between 1 and %d, got %d", maxWeek, week)
	}
	return week, nil
}

func newLineupPage(res *model.LineupResult) lineupPage {
	counts := make(map[model.Slot]int)
	for _, s := range res.Slots {
		counts[s.Slot] += s.Count
	}

	inputs := make([]slotInput, 0, len(slotInputs))
	for _, in := range slotInputs {
		in.Value = min(max(counts[in.Slot], in.Min), in.Max)
		inputs = append(inputs, in)
	}

	rows := make([]slotRow, 0, len(res.Lineup.Slots))
	for i := range res.Lineup.Slots {
		s := &res.Lineup.Slots[i]
		rows = append(rows, slotRow{Slot: s.Slot, Players: s.Players, Open: s.Open()})
	}

	return lineupPage{
		Result:   res,
		Inputs:   inputs,
		Rows:     rows,
		Total:    res.Lineup.ProjectedTotal(),
		Open:     res.Lineup.OpenSlots(),
		Starters: len(res.Lineup.Starters()),
	}
}

func errorStatus(err error) int {
	var statusErr *fetch.StatusError
	switch {
	case errors.Is(err, espn.ErrTeamNotFound), errors.Is(err, sleeper.ErrRosterNotFound):
		return http.StatusNotFound
	case errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound:
		return http.StatusNotFound
	case errors.Is(err, db.ErrInvalidWeeklyTotal):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func renderError(w http.ResponseWriter, render *render.Render, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		logger.WithComponent("web").WithError(err).Error("request failed")
	}
	render.HTML(w, status, strconv.Itoa(status), err.Error())
}
