package converter

import (
	"healthhub/internal/delivery/dto"
	"healthhub/internal/domain/entity"
)

func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientProfileResponse {
	return &dto.PatientProfileResponse{
		PatientCode:    profile.PatientCode,
		FullName:       profile.FullName,
		Email:          profile.Email,
		Address:        profile.Address,
		MedicalProblem: profile.MedicalProblem,
		DateOfBirth:    profile.DateOfBirth.Format("2006-01-02"),
		Age:            profile.Age,
		Gender:         profile.Gender,
		Contact:        profile.Contact,
		BloodGroup:     profile.BloodGroup,
	}
}

func PatientProfilesToResponses(profiles []entity.PatientProfile) []dto.PatientProfileResponse {
	responses := make([]dto.PatientProfileResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, *PatientProfileToResponse(&profiles[i]))
	}
	return responses
}
