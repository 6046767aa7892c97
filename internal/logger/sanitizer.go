package logger

import (
	"regexp"
	"strings"
)

// センシティブなキーのパターン（大文字小文字を区別しない）
var sensitiveKeyPatterns = []string{
	"password",
	"token",
	"api_token",
	"apitoken",
	"secret",
	"jira_token",
	"authorization",
	"auth",
	"credential",
	"access_token",
	"client_secret",
}

// センシティブな値のパターン（正規表現）
var sensitiveValuePatterns = []*regexp.Regexp{
	// Atlassian API tokens (ATATT + base64系文字列)
	regexp.MustCompile(`^ATATT[A-Za-z0-9\-_=]{20,}$`),
	// Jira Server/DC Personal Access Tokens (27文字前後の英数字)
	regexp.MustCompile(`^[A-Za-z0-9]{40,}$`),
	// Authorization Bearer tokens (大文字小文字を区別しない)
	regexp.MustCompile(`(?i)^Bearer\s+[A-Za-z0-9\-_\.=]{20,}$`),
	// Authorization Basic credentials (大文字小文字を区別しない)
	regexp.MustCompile(`(?i)^Basic\s+[A-Za-z0-9\+/=]{16,}$`),
}

// SanitizeValue は値がセンシティブかどうかを判定し、必要に応じてマスクする
func SanitizeValue(value interface{}) interface{} {
	if isSensitiveValue(value) {
		return maskValue(value)
	}
	return value
}

// SanitizeKeyValue はキーと値の組み合わせをチェックし、センシティブな情報をマスクする
func SanitizeKeyValue(key string, value interface{}) (string, interface{}) {
	if isSensitiveKey(key) {
		return key, "***MASKED***"
	}

	if isSensitiveValue(value) {
		return key, maskValue(value)
	}

	return key, value
}

// SanitizeArgs はログ引数（key-valueペア）をサニタイズする
func SanitizeArgs(args ...interface{}) []interface{} {
	if len(args) == 0 {
		return args
	}

	sanitized := make([]interface{}, len(args))
	copy(sanitized, args)

	// key-valueペアを処理（偶数インデックスがkey、奇数インデックスがvalue）
	for i := 0; i < len(sanitized)-1; i += 2 {
		if key, ok := sanitized[i].(string); ok {
			_, sanitizedValue := SanitizeKeyValue(key, sanitized[i+1])
			sanitized[i+1] = sanitizedValue
		}
	}

	return sanitized
}

// isSensitiveKey はキーがセンシティブかどうかを判定する
func isSensitiveKey(key string) bool {
	lowerKey := strings.ToLower(key)

	for _, pattern := range sensitiveKeyPatterns {
		// 完全一致または単語境界での一致をチェック
		if lowerKey == pattern ||
			strings.HasPrefix(lowerKey, pattern+"_") ||
			strings.HasSuffix(lowerKey, "_"+pattern) ||
			strings.Contains(lowerKey, "_"+pattern+"_") {
			return true
		}
	}

	return false
}

// isSensitiveValue は値がセンシティブかどうかを判定する
func isSensitiveValue(value interface{}) bool {
	str, ok := value.(string)
	if !ok || str == "" {
		return false
	}

	for _, pattern := range sensitiveValuePatterns {
		if pattern.MatchString(str) {
			return true
		}
	}

	return false
}

// maskValue はセンシティブな値をマスクする（種別のプレフィックスを保持）
func maskValue(value interface{}) string {
	str, ok := value.(string)
	if !ok || str == "" {
		return "***MASKED***"
	}

	if strings.HasPrefix(str, "ATATT") {
		return "ATATT***MASKED***"
	}
	if len(str) > 7 && strings.EqualFold(str[:7], "bearer ") {
		return str[:7] + "***MASKED***"
	}
	if len(str) > 6 && strings.EqualFold(str[:6], "basic ") {
		return str[:6] + "***MASKED***"
	}

	return "***MASKED***"
}
