package converter

import (
	"healthhub/internal/delivery/dto"
	"healthhub/internal/domain/entity"
)

func StaffProfilesToListItems(profiles []entity.StaffProfile) []dto.StaffListItem {
	items := make([]dto.StaffListItem, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		items = append(items, dto.StaffListItem{
			StaffCode:   p.StaffCode,
			FullName:    p.FullName,
			Designation: p.Designation,
			Department:  p.Department,
		})
	}
	return items
}
