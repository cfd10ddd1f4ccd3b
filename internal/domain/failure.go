package domain

// FailureDigest is the short name + message pair kept for quick failure scanning
type FailureDigest struct {
	TestName string `json:"testName"`
	Error    string `json:"error"`
}
