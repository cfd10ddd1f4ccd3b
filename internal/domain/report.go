package domain

// Document is the structured report persisted after every run
type Document struct {
	RunID       string          `json:"runId"`
	Summary     DocumentSummary `json:"summary"`
	TestResults []DocumentEntry `json:"testResults"`
	Errors      []FailureDigest `json:"errors"`
	Environment Environment     `json:"environment"`
}

// DocumentSummary contains the run-level statistics of a report
type DocumentSummary struct {
	ExecutionTime string `json:"executionTime"`
	TotalTests    int    `json:"totalTests"`
	PassedTests   int    `json:"passedTests"`
	FailedTests   int    `json:"failedTests"`
	SuccessRate   string `json:"successRate"`
	FinalResult   string `json:"finalResult"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Duration      int64  `json:"duration"`
}

// DocumentEntry is the persisted form of a TestResult
type DocumentEntry struct {
	TestName  string  `json:"testName"`
	Status    Status  `json:"status"`
	Duration  string  `json:"duration"`
	Timestamp string  `json:"timestamp"`
	Error     *string `json:"error"`
}

// Environment describes where the report was produced. Informational only.
type Environment struct {
	RuntimeVersion string `json:"runtimeVersion"`
	Platform       string `json:"platform"`
	Architecture   string `json:"architecture"`
	Timestamp      string `json:"timestamp"`
}
