package vaccineRepo

import (
	"context"
	"fmt"

	"vaxbook/models"

	"github.com/google/uuid"
)

// DefaultCatalogue is the vaccine list served by a fresh backend. Ids are
// assigned at seed time.
func DefaultCatalogue() []models.Vaccine {
	return []models.Vaccine{
		{Name: "BCG (Lao)", Description: "Phòng bệnh lao cho trẻ sơ sinh", Price: 155000, AgeRange: "0-1 tháng"},
		{Name: "Viêm gan B", Description: "Phòng viêm gan B, tiêm trong 24 giờ đầu sau sinh", Price: 220000, AgeRange: "0-1 tháng"},
		{Name: "Rotavirus", Description: "Vắc xin uống phòng tiêu chảy do Rotavirus", Price: 850000, AgeRange: "2-6 tháng"},
		{Name: "6 trong 1 (Hexaxim)", Description: "Bạch hầu, ho gà, uốn ván, bại liệt, Hib, viêm gan B", Price: 1015000, AgeRange: "2-24 tháng"},
		{Name: "Phế cầu (Synflorix)", Description: "Phòng viêm phổi, viêm tai giữa do phế cầu", Price: 1045000, AgeRange: "6 tuần-5 tuổi"},
		{Name: "Sởi - Quai bị - Rubella", Description: "Phòng sởi, quai bị và rubella", Price: 445000, AgeRange: "12 tháng trở lên"},
		{Name: "Viêm não Nhật Bản", Description: "Phòng viêm não Nhật Bản", Price: 320000, AgeRange: "12 tháng trở lên"},
		{Name: "Thủy đậu (Varivax)", Description: "Phòng bệnh thủy đậu", Price: 1085000, AgeRange: "12 tháng trở lên"},
	}
}

// Seed fills an empty catalogue with DefaultCatalogue. A catalogue that
// already has entries is left untouched.
func Seed(ctx context.Context, repo VaccineRepository) (int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	catalogue := DefaultCatalogue()
	for i := range catalogue {
		catalogue[i].ID = uuid.NewString()
		if err := repo.Upsert(ctx, &catalogue[i]); err != nil {
			return i, fmt.Errorf("failed to seed vaccine %q: %w", catalogue[i].Name, err)
		}
	}
	return len(catalogue), nil
}
