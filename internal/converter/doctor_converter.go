package converter

import (
	"healthhub/internal/delivery/dto"
	"healthhub/internal/domain/entity"
)

func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorProfileResponse {
	return &dto.DoctorProfileResponse{
		DoctorCode:      profile.DoctorCode,
		FullName:        profile.FullName,
		Email:           profile.Email,
		Gender:          profile.Gender,
		Age:             profile.Age,
		Qualification:   profile.Qualification,
		Specialization:  profile.Specialization,
		Experience:      profile.Experience,
		Phone:           profile.Phone,
		AvailableDays:   profile.AvailableDays,
		AvailableTime:   profile.AvailableTime,
		Address:         profile.Address,
		ConsultationFee: profile.ConsultationFee,
		Status:          profile.Status,
	}
}

func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorProfileResponse {
	responses := make([]dto.DoctorProfileResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, *DoctorProfileToResponse(&profiles[i]))
	}
	return responses
}
