package content

import "github.com/alexanderramin/fincerdas/internal/domain"

// Modules returns the canonical ordered curriculum. Module ids are stable
// because stored documents reference them.
func Modules() []Module {
	return modules
}

// ModuleByID returns the module with the given id, or nil.
func ModuleByID(id domain.ModuleID) *Module {
	for i := range modules {
		if modules[i].ID == id {
			return &modules[i]
		}
	}
	return nil
}

func q(text string, answers []Answer, explain string) Question {
	return Question{Text: text, Answers: answers, Explain: explain}
}

func a(text string, correct bool) Answer {
	return Answer{Text: text, Correct: correct}
}

var modules = []Module{
	{
		ID:    domain.ModuleIntro,
		Title: "Apa itu Fintech",
		Desc:  "Definisi fintech, manfaat, risiko, dan contoh penggunaan sehari-hari.",
		Article: []string{
			"Fintech (financial technology) adalah pemanfaatan teknologi untuk membuat layanan keuangan menjadi lebih cepat, mudah, dan terjangkau.",
			"Contoh sederhana: dompet digital untuk bayar QR, mobile banking, aplikasi pencatat anggaran, hingga proses e-KYC (verifikasi identitas) secara online.",
			"Manfaat utama: efisiensi transaksi, akses layanan, pengalaman pengguna yang lebih baik. Namun, risikonya juga ada: penipuan (scam), kebocoran data, dan keputusan finansial impulsif.",
			"Kunci literasi fintech: pahami produk, biaya/risiko, keamanan digital, serta hak sebagai konsumen.",
		},
		Videos: []Video{
			{Title: "Digital Financial Literacy (OJK)", YouTubeID: "Is3BfJN3bp0"},
			{Title: "Literasi Keuangan Digital (BI)", YouTubeID: "BweNpSHPW_g"},
		},
		Infographic: []string{
			"Fintech = Teknologi + Layanan Keuangan",
			"Manfaat: transaksi efisien, akses luas, pengalaman lebih baik, monitoring mudah",
			"Risiko: scam/phishing, kebocoran data, biaya tak dibaca, keputusan impulsif",
			"Kunci aman: jangan bagikan OTP/PIN, cek URL & kanal resmi, pahami biaya & risiko, laporkan jika tertipu",
		},
		Quiz: []Question{
			q("Fintech adalah…", []Answer{
				a("Pemanfaatan teknologi untuk layanan keuangan yang lebih efektif", true),
				a("Hanya aplikasi investasi saham", false),
				a("Hanya layanan pinjaman online", false),
				a("Semua aplikasi yang memakai internet", false),
			}, "Fintech mencakup beragam layanan keuangan berbasis teknologi."),
			q("Contoh fintech yang paling dekat di keseharian adalah…", []Answer{
				a("Dompet digital / pembayaran QR", true),
				a("Game online", false),
				a("Aplikasi edit foto", false),
				a("Pemutar musik", false),
			}, "Pembayaran digital termasuk kategori fintech pembayaran."),
			q("Pernyataan yang paling tepat:", []Answer{
				a("Fintech selalu aman tanpa risiko", false),
				a("Fintech bisa bermanfaat, tetapi tetap ada risiko yang perlu dipahami", true),
				a("Jika banyak promosi berarti pasti tepercaya", false),
				a("Semua fintech ilegal", false),
			}, "Selalu cek legalitas, biaya, risiko, dan keamanan."),
		},
	},
	{
		ID:    domain.ModuleTypes,
		Title: "Jenis-jenis Fintech & Contohnya",
		Desc:  "Peta jenis fintech: pembayaran, lending, investasi, insurtech, regtech, dll.",
		Article: []string{
			"Fintech hadir dalam berbagai jenis sesuai kebutuhan pengguna.",
			"1) Pembayaran: dompet digital, QR, payment gateway.",
			"2) Lending/pembiayaan: P2P lending (pertemukan pendana & peminjam), paylater (kredit konsumtif).",
			"3) Wealth/investment: aplikasi perencanaan dan investasi (tetap pahami risiko).",
			"4) Insurtech: teknologi untuk asuransi (pembelian polis, klaim, dsb.).",
			"5) Regtech: teknologi untuk membantu kepatuhan regulasi dan pelaporan.",
			"Saat memilih layanan, fokus pada: kebutuhan, biaya, risiko, reputasi, dan izin/terdaftar pada otoritas.",
		},
		Videos: []Video{
			{Title: "Bank Indonesia 101: Uang Elektronik (BI)", YouTubeID: "aLVZEmvxfk8"},
		},
		Infographic: []string{
			"Pembayaran: QR, e-wallet, payment gateway",
			"Lending: P2P lending, paylater (kredit)",
			"Wealth: perencanaan & investasi (pahami risiko)",
			"Insurtech: asuransi digital",
			"Regtech: kepatuhan & pelaporan",
			"Remittance: transfer lintas wilayah/negara",
		},
		Quiz: []Question{
			q("Kategori fintech yang fokus pada transaksi/QR adalah…", []Answer{
				a("Pembayaran", true),
				a("Insurtech", false),
				a("Regtech", false),
				a("Wealth", false),
			}, "Pembayaran mencakup QR, e-wallet, payment gateway."),
			q("P2P lending umumnya adalah…", []Answer{
				a("Platform yang mempertemukan pendana dan peminjam", true),
				a("Aplikasi edit dokumen", false),
				a("Aplikasi belanja online", false),
				a("Aplikasi peta", false),
			}, "P2P lending menghubungkan pendana dan peminjam sesuai aturan yang berlaku."),
			q("Yang termasuk prinsip memilih layanan fintech dengan bijak:", []Answer{
				a("Cek biaya/risiko dan reputasi", true),
				a("Ambil yang memberikan bonus terbesar tanpa membaca syarat", false),
				a("Bagikan OTP agar cepat diproses", false),
				a("Percaya pesan DM tanpa verifikasi", false),
			}, "Selalu baca syarat, cek biaya, dan jaga keamanan."),
		},
	},
	{
		ID:    domain.ModuleSecurity,
		Title: "Keamanan Digital & Privasi",
		Desc:  "OTP, phishing, social engineering, perlindungan data, dan kebiasaan aman.",
		Article: []string{
			"Keamanan digital adalah fondasi literasi fintech. Serangan sering terjadi bukan karena teknologi, tetapi karena manipulasi manusia (social engineering).",
			"Aturan emas: Jangan pernah membagikan OTP, PIN, password, atau kode verifikasi ke siapa pun (termasuk yang mengaku CS).",
			"Waspada phishing: tautan palsu, domain mirip, aplikasi/APK tidak resmi, dan permintaan data mendesak.",
			"Aktifkan MFA/2FA jika tersedia, gunakan password unik, dan perbarui sistem operasi serta aplikasi secara berkala.",
			"Jika merasa akun dibajak: segera ubah sandi, logout semua perangkat, hubungi kanal resmi, dan simpan bukti.",
		},
		Videos: []Video{
			{Title: "OJK: Lawan Modus Penipuan Digital", YouTubeID: "ngKlL1_zB6Y"},
		},
		Infographic: []string{
			"1. Jangan bagikan OTP/PIN/password — termasuk ke pihak yang mengaku CS",
			"2. Cek URL/domain & kanal resmi — waspada domain mirip-mirip",
			"3. Aktifkan MFA/2FA — lapisan keamanan tambahan",
			"4. Update perangkat & aplikasi — patch menutup celah keamanan",
			"5. Batasi izin aplikasi — jangan asal beri akses SMS/kontak",
		},
		Quiz: []Question{
			q("OTP sebaiknya…", []Answer{
				a("Tidak dibagikan kepada siapa pun", true),
				a("Dibagikan ke CS lewat chat agar cepat", false),
				a("Disimpan di notes publik", false),
				a("Dikirim ke teman untuk cadangan", false),
			}, "OTP adalah kode rahasia. Siapa pun yang punya OTP bisa mengambil alih akun."),
			q("Ciri phishing yang umum adalah…", []Answer{
				a("Tautan/domain mirip resmi dan meminta data mendesak", true),
				a("Aplikasi resmi dari store", false),
				a("Pesan verifikasi yang kamu minta sendiri", false),
				a("Email internal yang sudah diverifikasi", false),
			}, "Phishing sering memakai rasa panik/urgensi."),
			q("Langkah aman yang tepat:", []Answer{
				a("Aktifkan MFA dan gunakan password unik", true),
				a("Pakai password sama untuk semua akun", false),
				a("Klik tautan dari DM tanpa cek URL", false),
				a("Install APK dari grup chat", false),
			}, "Kebiasaan kecil bisa mencegah risiko besar."),
		},
	},
	{
		ID:    domain.ModuleRegulation,
		Title: "Regulasi & Perlindungan Konsumen",
		Desc:  "Hak konsumen, pentingnya izin/terdaftar, dan jalur pengaduan resmi.",
		Article: []string{
			"Regulasi membantu menjaga ekosistem keuangan tetap sehat dan melindungi konsumen.",
			"Sebagai pengguna, kamu berhak mendapat informasi yang jelas (biaya, risiko, syarat) dan perlakuan yang adil.",
			"Biasakan memeriksa legalitas/izin/terdaftar pada regulator (sesuai jenis layanannya) dan gunakan kanal resmi saat butuh bantuan.",
			"Jika jadi korban penipuan transaksi keuangan, laporkan melalui kanal resmi agar dapat ditindaklanjuti dan datamu terdokumentasi.",
		},
		Videos: []Video{
			{Title: "OJK: Sistem Terintegrasi Hadang Scam & Fraud", YouTubeID: "1Onldsucf4U"},
		},
		Infographic: []string{
			"1. Pahami informasi produk — biaya, risiko, syarat, denda, privasi",
			"2. Gunakan kanal resmi — website resmi, nomor resmi, email resmi",
			"3. Simpan bukti — screenshot, bukti transfer, kronologi",
			"4. Laporkan penipuan — kanal resmi IASC: iasc.ojk.go.id",
		},
		Quiz: []Question{
			q("Tujuan utama regulasi dalam layanan keuangan adalah…", []Answer{
				a("Melindungi konsumen dan menjaga stabilitas ekosistem", true),
				a("Agar semua layanan menjadi gratis", false),
				a("Agar semua orang bisa pinjam tanpa syarat", false),
				a("Agar penipuan tidak perlu dilaporkan", false),
			}, "Regulasi menekankan transparansi, keamanan, dan perlindungan."),
			q("Saat ada kendala/aduan, yang paling aman adalah…", []Answer{
				a("Menghubungi kanal resmi dan menyimpan bukti", true),
				a("DM akun yang mirip-mirip", false),
				a("Kirim OTP agar dibantu", false),
				a("Sebar data pribadi di komentar", false),
			}, "Gunakan kanal resmi dan jangan bagikan data rahasia."),
			q("Pernyataan benar:", []Answer{
				a("Laporan penipuan sebaiknya lewat kanal resmi agar ditindaklanjuti", true),
				a("Kalau malu, lebih baik diam saja", false),
				a("Semua yang memberi bonus besar pasti resmi", false),
				a("Website mirip resmi pasti aman", false),
			}, "Melapor itu langkah protektif, bukan memalukan."),
		},
	},
}
