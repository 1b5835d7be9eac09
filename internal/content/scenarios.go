package content

// FraudScenarios returns the canonical ordered fraud-simulator scenarios.
func FraudScenarios() []Scenario {
	return []Scenario{
		{
			Prompt: "'Halo Kak, akun kamu kena blokir. Kirim OTP sekarang biar bisa dibuka.' (mengaku CS)",
			Choices: []Choice{
				{Text: "Kirim OTP supaya cepat", Safe: false, Tip: "OTP tidak boleh dibagikan."},
				{Text: "Tolak, cek nomor/akun resmi, hubungi kanal resmi sendiri", Safe: true, Tip: "Benar. Kamu yang inisiatif menghubungi kanal resmi."},
				{Text: "Klik link di pesan tanpa cek URL", Safe: false, Tip: "Link bisa phishing."},
			},
		},
		{
			Prompt: "Kamu menerima link: 'login-aman-ojk.id-verif.com'. Tampak meyakinkan.",
			Choices: []Choice{
				{Text: "Cek domain dengan teliti, jangan login jika mencurigakan", Safe: true, Tip: "Benar. Domain mirip-mirip sering dipakai phishing."},
				{Text: "Login saja karena tampilannya sama", Safe: false, Tip: "Tampilan bisa ditiru."},
				{Text: "Minta teman cekkan OTP-nya", Safe: false, Tip: "Tetap tidak aman."},
			},
		},
		{
			Prompt: "Ada iming-iming 'bonus besar' jika install APK dari chat grup.",
			Choices: []Choice{
				{Text: "Install APK karena bonusnya besar", Safe: false, Tip: "APK luar store berisiko malware."},
				{Text: "Tolak, instal hanya dari store resmi dan verifikasi sumber", Safe: true, Tip: "Benar. Batasi izin aplikasi dan cek reputasi."},
				{Text: "Install, tapi kasih izin akses SMS", Safe: false, Tip: "Akses SMS bisa dicuri untuk OTP."},
			},
		},
	}
}
