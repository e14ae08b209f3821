package assistant

import "strings"

// Opciones de mejora de texto que ofrece la comunidad.
const (
	OptionImproveWriting = "Improve Writing"
	OptionMoreEngaging   = "Make More Engaging"
	OptionAddQuestion    = "Add Discussion Question"
	OptionAsList         = "Reformat as List"
	OptionSimplify       = "Simplify Language"
)

const plainOutput = " Kembalikan hanya teks hasil akhir dalam bentuk teks biasa, tanpa markdown, tanpa komentar tambahan, maksimal 1000 karakter:\n"

var improvePrompts = map[string]string{
	OptionImproveWriting: "Perbaiki tata bahasa, ejaan, dan alur tulisan berikut supaya lebih jelas dan enak dibaca oleh komunitas adopsi hewan." + plainOutput,
	OptionMoreEngaging:   "Tulis ulang teks berikut dengan nada hangat dan bersahabat sehingga anggota komunitas adopsi hewan terdorong untuk berkomentar." + plainOutput,
	OptionAddQuestion:    "Tambahkan satu pertanyaan yang relevan di bagian akhir teks berikut untuk memancing diskusi, lalu tampilkan seluruh teks beserta pertanyaannya." + plainOutput,
	OptionAsList:         "Susun poin-poin penting dari teks berikut menjadi daftar bernomor atau berpoin agar mudah dibaca." + plainOutput,
	OptionSimplify:       "Sederhanakan bahasa teks berikut agar mudah dipahami pembaca umum dan hindari istilah teknis." + plainOutput,
}

const fallbackImprovePrompt = "Tinjau dan perbaiki kualitas teks berikut: "

const assistantPrompt = "Kamu adalah asisten chat aplikasi Petster yang membantu pengguna seputar hewan peliharaan. " +
	"Balas salam dengan ramah. Untuk pertanyaan tentang hewan peliharaan, jawab dengan jelas dan singkat. " +
	"Jika pertanyaannya di luar topik hewan peliharaan, sampaikan dengan sopan bahwa kamu hanya bisa membantu soal hewan peliharaan:\n"

// ImprovePrompt arma el prompt para una opción; opción desconocida => plantilla genérica.
func ImprovePrompt(option, text string) string {
	if tpl, ok := improvePrompts[strings.TrimSpace(option)]; ok {
		return tpl + text
	}
	return fallbackImprovePrompt + text
}

func AssistantPrompt(question string) string {
	return assistantPrompt + question
}
