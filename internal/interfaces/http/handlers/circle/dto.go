package circle

import "dropcircle/internal/application/circle/usecases"

type CreateCircleRequest struct {
	Title string `json:"title" binding:"required,max=120"`
}

func (r *CreateCircleRequest) ToCommand(accountID string) usecases.CreateCircleCommand {
	return usecases.CreateCircleCommand{
		AccountID: accountID,
		Title:     r.Title,
	}
}

type RenameCircleRequest struct {
	Title string `json:"title" binding:"required,max=120"`
}

func (r *RenameCircleRequest) ToCommand(circleID, accountID string) usecases.RenameCircleCommand {
	return usecases.RenameCircleCommand{
		CircleID:  circleID,
		AccountID: accountID,
		Title:     r.Title,
	}
}

type SetLiveRequest struct {
	Live *bool `json:"live" binding:"required"`
}

func (r *SetLiveRequest) ToCommand(circleID, accountID string) usecases.SetLiveCommand {
	return usecases.SetLiveCommand{
		CircleID:  circleID,
		AccountID: accountID,
		Live:      *r.Live,
	}
}
