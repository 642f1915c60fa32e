package admin

import "dropcircle/internal/application/betarequest/usecases"

type ReviewRequestRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approved denied"`
}

func (r *ReviewRequestRequest) ToCommand(requestID string) usecases.ReviewRequestCommand {
	return usecases.ReviewRequestCommand{
		RequestID: requestID,
		Decision:  r.Decision,
	}
}

type ProvisionAccountRequest struct {
	AccountID string `json:"account_id" binding:"required,max=64"`
}

func (r *ProvisionAccountRequest) ToCommand(requestID string) usecases.ProvisionAccountCommand {
	return usecases.ProvisionAccountCommand{
		RequestID: requestID,
		AccountID: r.AccountID,
	}
}
