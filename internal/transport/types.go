package transport

import "github.com/lumendao/treasury-backend/internal/model"

// ProgressResponse is the point-in-time projection of a schedule.
type ProgressResponse struct {
	Total     string `json:"total"`
	Accrued   string `json:"accrued"`
	Claimed   string `json:"claimed"`
	Claimable string `json:"claimable"`
	Status    string `json:"status"`
}

func progressResponse(p model.Progress) ProgressResponse {
	return ProgressResponse{
		Total:     amountString(p.Total),
		Accrued:   amountString(p.Accrued),
		Claimed:   amountString(p.Claimed),
		Claimable: amountString(p.Claimable),
		Status:    p.Status,
	}
}

// ClaimResponse is one row of a schedule's claim history.
type ClaimResponse struct {
	ScheduleID uint32 `json:"schedule_id"`
	Recipient  string `json:"recipient"`
	Amount     string `json:"amount"`
	ClaimedAt  uint64 `json:"claimed_at"`
}

func claimResponses(claims []model.Claim) []ClaimResponse {
	out := make([]ClaimResponse, 0, len(claims))
	for _, claim := range claims {
		out = append(out, ClaimResponse{
			ScheduleID: claim.ScheduleID,
			Recipient:  string(claim.Recipient),
			Amount:     amountString(claim.Amount),
			ClaimedAt:  claim.ClaimedAt,
		})
	}
	return out
}

// idsOrEmpty keeps empty lists serializing as [] instead of null.
func idsOrEmpty(ids []uint32) []uint32 {
	if ids == nil {
		return []uint32{}
	}
	return ids
}

func accountStrings(accounts []model.Account) []string {
	out := make([]string, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, string(account))
	}
	return out
}

func toAccounts(names []string) []model.Account {
	out := make([]model.Account, 0, len(names))
	for _, name := range names {
		out = append(out, model.Account(name))
	}
	return out
}
