package schedule

import (
	"github.com/courtdesk/court-scheduler/internal/models"
)

// SlotView is the authoritative per-slot answer for one request: generated
// candidate merged with whatever persisted state exists for it.
type SlotView struct {
	ID        string `json:"id"`
	CourtID   uint   `json:"courtId"`
	CourtName string `json:"courtName"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`

	Available bool              `json:"available"`
	Blocked   bool              `json:"blocked"`
	Type      string            `json:"type,omitempty"`
	ClinicID  *uint             `json:"clinicId,omitempty"`
	Comments  models.StringList `json:"comments"`

	Reservation *models.Reservation `json:"reservation,omitempty"`
	Clinic      *models.Clinic      `json:"clinic,omitempty"`

	IsPast      bool       `json:"isPast"`
	IsAvailable bool       `json:"isAvailable"`
	IsReserved  bool       `json:"isReserved"`
	IsBlocked   bool       `json:"isBlocked"`
	IsClinic    bool       `json:"isClinic"`
	Status      SlotStatus `json:"status"`
}

// Reconcile merges candidates against the persisted rows, reservations and
// clinics loaded for the same date. Persisted flags are authoritative except
// that availability is forced off for past slots. Must run fresh per request:
// the Past flag on the candidates depends on when they were generated.
func Reconcile(
	candidates []Candidate,
	rows []models.TimeSlot,
	reservations []models.Reservation,
	clinics []models.Clinic,
) []SlotView {

	rowByID := make(map[string]*models.TimeSlot, len(rows))
	for i := range rows {
		rowByID[rows[i].SlotID] = &rows[i]
	}

	resBySlot := make(map[string]*models.Reservation, len(reservations))
	for i := range reservations {
		resBySlot[reservations[i].TimeSlotID] = &reservations[i]
	}

	clinicByID := make(map[uint]*models.Clinic, len(clinics))
	clinicBySlot := make(map[string]*models.Clinic, len(clinics))
	for i := range clinics {
		clinicByID[clinics[i].ID] = &clinics[i]
		if clinics[i].TimeSlotID != nil {
			clinicBySlot[*clinics[i].TimeSlotID] = &clinics[i]
		}
	}

	views := make([]SlotView, 0, len(candidates))

	for _, cand := range candidates {
		// Canonical ID first, legacy bare-hour form second.
		row := rowByID[cand.SlotID]
		if row == nil {
			row = rowByID[cand.LegacySlotID]
		}

		view := SlotView{
			ID:        cand.SlotID,
			CourtID:   cand.CourtID,
			CourtName: cand.CourtName,
			Date:      cand.Date,
			StartTime: cand.StartTime,
			EndTime:   cand.EndTime,
			IsPast:    cand.Past,
			Comments:  models.StringList{},
		}

		if row != nil {
			view.Available = row.Available && !cand.Past
			view.Blocked = row.Blocked
			view.Type = row.Type
			view.ClinicID = row.ClinicID
			if row.Comments != nil {
				view.Comments = row.Comments
			}
		} else {
			view.Available = !cand.Past
		}

		res := resBySlot[cand.SlotID]
		if res == nil {
			res = resBySlot[cand.LegacySlotID]
		}

		var clinic *models.Clinic
		if view.ClinicID != nil {
			clinic = clinicByID[*view.ClinicID]
		}
		if clinic == nil {
			clinic = clinicBySlot[cand.SlotID]
		}
		if clinic == nil {
			clinic = clinicBySlot[cand.LegacySlotID]
		}

		view.Reservation = res
		view.Clinic = clinic

		view.IsClinic = clinic != nil
		view.IsReserved = res != nil && !view.IsClinic
		view.IsBlocked = view.Blocked
		view.IsAvailable = !cand.Past && !view.IsReserved && !view.IsBlocked && !view.IsClinic
		view.Status = DeriveStatus(cand.Past, view.Blocked, view.IsClinic, res != nil)

		views = append(views, view)
	}

	return views
}
