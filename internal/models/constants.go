package models

// Topic recorded when no knowledge-base entry scores above the threshold.
const FallbackTopic = "Fallback"

// Topics recorded for intent-scripted turns. The Curhat topic is what
// arms the empathetic follow-up on the next turn.
const (
	GreetingTopic = "Salam"
	ThanksTopic   = "Terima Kasih"
	GoodbyeTopic  = "Sampai Jumpa"
	VentingTopic  = "Curhat"
)

var (
	GreetingReplies = []string{
		"Halo 👋, selamat datang di SpectrumByte CS! Ada yang bisa kami bantu?",
		"Hai! 🙌 Terima kasih sudah menghubungi SpectrumByte, ada yang bisa kami perbaiki?",
		"Selamat datang di layanan SpectrumByte 📱💻, kami siap membantu Anda.",
	}

	GoodbyeReplies = []string{
		"Terima kasih sudah menghubungi kami 🙏",
		"Senang bisa membantu 🤝, sampai jumpa!",
		"Kami siap membantu kapan saja 👍, have a nice day!",
	}

	ThanksReplies = []string{
		"Sama-sama 😊 Senang bisa membantu!",
	}

	VentingReplies = []string{
		"Kami mengerti rasanya 🙏 Semoga harimu segera membaik ya. Ada yang bisa kami bantu soal perangkat Anda?",
	}

	FallbackReplies = []string{
		"Hmm, saya belum begitu paham maksud Anda. Bisa dijelaskan lebih detail ya? 🙂",
		"Boleh dijelaskan lebih lengkap supaya saya bisa bantu lebih tepat 👍",
		"Sepertinya saya kurang mengerti, bisa coba diulang dengan cara lain? 🤔",
	}

	EmpathyPhrases = []string{
		"Baik, kami bantu ya 🙏",
		"Tenang saja, kami di sini untuk membantu 😊",
		"Terima kasih sudah bertanya 🙌",
	}
)

// Follow-up sentences appended by the contextual addendum rules.
const (
	GaransiFollowUp    = "Oh iya, jangan lupa simpan nota servis Anda untuk klaim garansi ya 📝"
	ServiceETAFollowUp = "Untuk estimasi lebih pasti, teknisi kami akan menghubungi Anda jika unit sudah selesai dicek 🔧"
	CurhatFollowUp     = "Semangat ya! Kalau ada kendala dengan perangkat, kami siap bantu 💪"
)
