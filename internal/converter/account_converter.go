package converter

import (
	"healthhub/internal/delivery/dto"
	"healthhub/internal/domain/entity"
)

func AccountToResponse(account *entity.Account) *dto.AccountResponse {
	return &dto.AccountResponse{
		ID:        account.ID,
		FullName:  account.FullName,
		Email:     account.Email,
		Role:      account.Role,
		Status:    account.Status,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
