package catalog

import "vaxbook/models"

const (
	GuideURL        = "https://vnvc.vn/cam-nang-tiem-chung/quy-trinh-tiem-chung/"
	EmergencyNumber = "115"
)

func SupportContact() models.SupportContact {
	return models.SupportContact{
		Hotline: "0123-456-789",
		Email:   "support@vaccine.com",
	}
}

// VaccinationGuides returns the injection guide sections in display order.
func VaccinationGuides() []models.VaccinationGuide {
	return []models.VaccinationGuide{
		{
			Title:       "Chuẩn bị trước khi tiêm",
			Description: "Hướng dẫn chuẩn bị tâm lý và vật dụng cần thiết cho trẻ",
			Details: []string{
				"Giữ trẻ thoải mái và bình tĩnh bằng cách trò chuyện nhẹ nhàng",
				"Mang theo sổ tiêm chủng và giấy tờ tùy thân",
				"Chuẩn bị đồ chơi hoặc sách yêu thích để đánh lạc hướng trẻ",
			},
		},
		{
			Title:       "Quy trình tiêm phòng",
			Description: "Các bước thực hiện tiêm phòng an toàn cho trẻ",
			Details: []string{
				"Kiểm tra sức khỏe tổng quát trước khi tiêm (nhiệt độ, tiền sử dị ứng)",
				"Thực hiện tiêm bởi nhân viên y tế được đào tạo",
				"Theo dõi phản ứng tại chỗ trong 30 phút sau tiêm",
			},
		},
		{
			Title:       "Chăm sóc sau tiêm",
			Description: "Cách xử lý các phản ứng phụ thường gặp",
			Details: []string{
				"Theo dõi nhiệt độ cơ thể mỗi 4-6 giờ",
				"Xử lý sốt nhẹ bằng khăn ấm và paracetamol theo liều bác sĩ",
				"Liên hệ bác sĩ nếu trẻ quấy khóc kéo dài hoặc có dấu hiệu bất thường",
			},
		},
	}
}

// VaccinationSchedule is the basic childhood schedule.
func VaccinationSchedule() []models.ScheduleEntry {
	return []models.ScheduleEntry{
		{Age: "Sơ sinh", Vaccines: []string{"BCG (Lao)", "Viêm gan B"}},
		{Age: "2 tháng", Vaccines: []string{"DPT-VGB-Hib (Bạch hầu, Ho gà, Uốn ván, Viêm gan B, Hib)", "Polio uống"}},
		{Age: "12 tháng", Vaccines: []string{"Sởi", "Viêm não Nhật Bản"}},
	}
}

func ParentTips() []string {
	return []string{
		"Cho trẻ bú hoặc ăn nhẹ trước khi tiêm để giảm căng thẳng",
		"Mặc quần áo thoải mái, dễ cởi để tiện cho việc tiêm",
		"Ghi lại các phản ứng sau tiêm để báo cáo cho bác sĩ",
	}
}
