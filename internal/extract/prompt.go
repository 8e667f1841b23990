package extract

import "fmt"

// promptTemplate instructs the model to pull the four schedule fields out of
// an Indonesian-language message and answer with a bare JSON object. The
// template is fixed at build time.
const promptTemplate = `Ekstrak informasi berikut dari pesan Bahasa Indonesia di bawah ini:

1. phone_number: nomor telepon dalam format umum Indonesia apa pun (dengan atau tanpa kode negara, dengan atau tanpa pemisah seperti spasi atau tanda hubung)
2. date: tanggal survey, normalisasikan sehingga menyertakan nama hari dalam Bahasa Indonesia (contoh: "Senin, 15 Januari 2026")
3. time: jam survey, konversikan ke format 24 jam (contoh: "14:00")
4. name: nama lengkap persis seperti yang tertulis di pesan

Jika suatu informasi tidak ditemukan, isi dengan string kosong "".

Pesan: "%s"

Balas HANYA dengan satu objek JSON persis berbentuk:
{"phone_number": "...", "date": "...", "time": "...", "name": "..."}
Jangan tambahkan teks lain di luar objek JSON tersebut.`

// BuildPrompt renders the extraction prompt for a normalized message.
// Deterministic; the same message always yields the same prompt.
func BuildPrompt(message string) string {
	return fmt.Sprintf(promptTemplate, message)
}
