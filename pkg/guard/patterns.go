package guard

import "regexp"

// CompiledPattern holds a pre-compiled redaction regex with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// redactionPatterns is the fixed set of sensitive-data patterns scrubbed from
// every tool output before it reaches the model. Compiled once at init.
var redactionPatterns = []*CompiledPattern{
	{
		Name:        "pem_block",
		Regex:       regexp.MustCompile(`-----BEGIN [A-Z ]+-----[\s\S]*?-----END [A-Z ]+-----`),
		Replacement: "[REDACTED_PEM_BLOCK]",
	},
	{
		Name:        "bearer_token",
		Regex:       regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9\-_.~+/]{16,}=*`),
		Replacement: "[REDACTED_BEARER_TOKEN]",
	},
	{
		Name:        "api_key_assignment",
		Regex:       regexp.MustCompile(`(?i)(api[_-]?key|apikey|secret[_-]?key|access[_-]?token|auth[_-]?token|client[_-]?secret)\s*[=:]\s*["']?[A-Za-z0-9\-_.~+/]{12,}["']?`),
		Replacement: "[REDACTED_API_KEY]",
	},
	{
		Name:        "anthropic_key",
		Regex:       regexp.MustCompile(`sk-[A-Za-z0-9\-_]{20,}`),
		Replacement: "[REDACTED_API_KEY]",
	},
	{
		Name:        "aws_access_key",
		Regex:       regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
		Replacement: "[REDACTED_AWS_KEY]",
	},
	{
		Name:        "github_token",
		Regex:       regexp.MustCompile(`gh[pousr]_[A-Za-z0-9]{36,}`),
		Replacement: "[REDACTED_GITHUB_TOKEN]",
	},
	{
		Name:        "basic_auth_url",
		Regex:       regexp.MustCompile(`(?i)(https?://)[^/\s:@]+:[^/\s:@]+@`),
		Replacement: "$1[REDACTED_CREDENTIALS]@",
	},
	{
		Name:        "password_assignment",
		Regex:       regexp.MustCompile(`(?i)(password|passwd|pwd)\s*[=:]\s*["']?[^\s"']{6,}["']?`),
		Replacement: "[REDACTED_PASSWORD]",
	},
}

// injectionSignal pairs a detection regex with the label reported in the
// untrusted-content header.
type injectionSignal struct {
	Label string
	Regex *regexp.Regexp
}

// injectionSignals are heuristics for prompt-injection attempts inside tool
// output. Detection annotates; it never blocks the content.
var injectionSignals = []injectionSignal{
	{
		Label: "instruction_override",
		Regex: regexp.MustCompile(`(?i)(ignore|disregard|forget)\s+(all\s+|any\s+)?(previous|prior|above|earlier)\s+(instructions?|prompts?|rules?|directions?)`),
	},
	{
		Label: "instruction_injection",
		Regex: regexp.MustCompile(`(?i)(new|updated|revised)\s+(instructions?|system\s+prompt)\s*:`),
	},
	{
		Label: "system_prompt_probe",
		Regex: regexp.MustCompile(`(?i)(reveal|show|print|repeat|output)\s+(your\s+)?(system\s+prompt|initial\s+instructions|hidden\s+rules)`),
	},
	{
		Label: "secret_exfiltration",
		Regex: regexp.MustCompile(`(?i)(send|post|exfiltrate|forward|upload)\s+(the\s+|your\s+|all\s+)?(credentials?|secrets?|tokens?|api\s+keys?|passwords?)`),
	},
	{
		Label: "role_hijack",
		Regex: regexp.MustCompile(`(?i)you\s+are\s+(now|no\s+longer)\s+`),
	},
}
