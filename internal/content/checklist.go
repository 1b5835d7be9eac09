package content

// ChecklistItems returns the security habit checklist rendered to the user.
// The stored document carries one extra key ("reportScam") kept for documents
// written by earlier versions; it has no interactive entry here.
func ChecklistItems() []ChecklistItem {
	return []ChecklistItem{
		{Key: "otpNeverShare", Label: "Saya tidak pernah membagikan OTP/PIN/password ke siapa pun (termasuk yang mengaku CS)."},
		{Key: "mfaOn", Label: "Saya mengaktifkan MFA/2FA pada akun penting."},
		{Key: "passwordManager", Label: "Saya memakai password unik & mempertimbangkan password manager."},
		{Key: "updateDevice", Label: "Saya rutin update OS & aplikasi (patch keamanan)."},
		{Key: "checkUrl", Label: "Saya selalu cek URL/domain sebelum login/klik link."},
	}
}
