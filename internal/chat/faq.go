package chat

import (
	"strings"

	"vibesync/internal/textnorm"
)

// cannedResponse answers a frequently asked product question without
// involving the generator.
type cannedResponse struct {
	questions []string
	answerVI  string
	answerEN  string
}

var cannedResponses = []cannedResponse{
	{
		questions: []string{
			"ai tạo ra trang web này", "ai phát triển trang web này",
			"người làm ra trang web này là ai", "ai làm website này",
			"ai là lập trình viên", "developer là ai", "dev là ai",
		},
		answerVI: "🧑‍💻 Website này được phát triển bởi đội ngũ VibeSync – đam mê âm nhạc và công nghệ.",
		answerEN: "🧑‍💻 This website was developed by the VibeSync team – passionate about music and technology.",
	},
	{
		questions: []string{
			"trang web này dùng để làm gì", "mục đích của trang web này là gì",
			"website này dùng để làm gì", "tôi vào trang web này để làm gì",
			"chức năng của trang web", "trang web hoạt động thế nào",
		},
		answerVI: "🎧 VibeSync là nền tảng nghe nhạc thông minh, nơi bạn có thể tìm kiếm, nghe và khám phá playlist theo tâm trạng.",
		answerEN: "🎧 VibeSync is a smart music platform where you can search, listen, and explore playlists based on your mood.",
	},
	{
		questions: []string{
			"làm sao để đăng ký tài khoản", "cách đăng ký tài khoản", "tôi muốn tạo tài khoản",
			"đăng ký như thế nào", "đăng kí như thế nào", "đăng kí thế nào",
			"hướng dẫn đăng ký", "đăng ký ở đâu",
		},
		answerVI: "🔐 Bạn có thể tạo tài khoản bằng cách nhấn vào nút 'Đăng ký' ở góc trên cùng bên phải, sau đó điền thông tin.",
		answerEN: "🔐 You can create an account by clicking the 'Sign Up' button at the top right and filling in your details.",
	},
	{
		questions: []string{
			"tôi có thể nghe nhạc miễn phí không", "nghe nhạc có mất phí không",
			"website có miễn phí không", "nghe nhạc free không",
			"nghe nhạc không tốn tiền không", "có trả phí không",
		},
		answerVI: "✅ Hoàn toàn có thể! Tất cả playlist cơ bản đều miễn phí, không cần trả phí.",
		answerEN: "✅ Yes! All basic playlists are free, no subscription required.",
	},
}

// cannedAnswer matches the message against the FAQ by normalized
// containment and returns the answer in the given language.
func cannedAnswer(message, lang string) (string, bool) {
	norm := textnorm.Normalize(message)
	for _, group := range cannedResponses {
		for _, q := range group.questions {
			if strings.Contains(norm, textnorm.Normalize(q)) {
				if lang == "en" {
					return group.answerEN, true
				}
				return group.answerVI, true
			}
		}
	}
	return "", false
}
