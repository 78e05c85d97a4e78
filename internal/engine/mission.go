package engine

// Status is the lifecycle state of a mission. Pending missions may be
// resolved exactly once; completed and failed are terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Terminal reports whether the status is a resolved end state.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// DisplayName returns a human-readable label for the status.
func (s Status) DisplayName() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusCompleted:
		return "Completed"
	case StatusFailed:
		return "Failed"
	default:
		return string(s)
	}
}

// Mission is a single journaled task owned by one calendar day.
type Mission struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	Tier               Tier   `json:"tier"`
	CompletionCriteria string `json:"completionCriteria"`
	RewardText         string `json:"rewardText"`
	PunishmentText     string `json:"punishmentText"`
	Date               Date   `json:"date"`
	Time               string `json:"time,omitempty"` // optional HH:MM
	Status             Status `json:"status"`
}

// DayRecord holds the missions and earned XP for one calendar day.
// A missing record is equivalent to an empty, unblocked one.
type DayRecord struct {
	Date     Date       `json:"date"`
	Missions []*Mission `json:"missions"`
	XPEarned int        `json:"xpEarned"`
	Blocked  bool       `json:"blocked"`
}

// Mission returns the mission with the given id, or nil.
func (d *DayRecord) Mission(id string) *Mission {
	for _, m := range d.Missions {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (d *DayRecord) clone() *DayRecord {
	missions := make([]*Mission, len(d.Missions))
	for i, m := range d.Missions {
		cp := *m
		missions[i] = &cp
	}
	return &DayRecord{
		Date:     d.Date,
		Missions: missions,
		XPEarned: d.XPEarned,
		Blocked:  d.Blocked,
	}
}
