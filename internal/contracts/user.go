package contracts

import "Caixa/internal/domain/user"

type ProfileUpdateRequest struct {
	Name         *string `json:"name" binding:"omitempty,notblank,max=100"`
	Email        *string `json:"email" binding:"omitempty,email,max=100"`
	CNPJ         *string `json:"cnpj" binding:"omitempty,max=20"`
	BusinessType *string `json:"businessType" binding:"omitempty,max=100"`
}

func (r ProfileUpdateRequest) ToPatch() user.ProfilePatch {
	return user.ProfilePatch{
		Name:         r.Name,
		Email:        r.Email,
		CNPJ:         r.CNPJ,
		BusinessType: r.BusinessType,
	}
}
