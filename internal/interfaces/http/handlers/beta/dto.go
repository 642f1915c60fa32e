package beta

import "dropcircle/internal/application/betarequest/usecases"

type SubmitRequestRequest struct {
	Name  string `json:"name" binding:"required,max=120"`
	Email string `json:"email" binding:"required,email,max=254"`
	Note  string `json:"note,omitempty" binding:"max=2000"`
}

func (r *SubmitRequestRequest) ToCommand() usecases.SubmitRequestCommand {
	return usecases.SubmitRequestCommand{
		Name:  r.Name,
		Email: r.Email,
		Note:  r.Note,
	}
}

type UpdateNoteRequest struct {
	Email string `json:"email" binding:"required,email,max=254"`
	Note  string `json:"note" binding:"max=2000"`
}

func (r *UpdateNoteRequest) ToCommand() usecases.UpdateNoteCommand {
	return usecases.UpdateNoteCommand{
		Email: r.Email,
		Note:  r.Note,
	}
}
