// Package errors: 관리 봇 전체에서 사용되는 에러 타입들을 정의한다.
// 표준 Go 에러 스타일(Unwrap 지원)을 따른다.
package errors

import "fmt"

// CacheError: 캐시 작업 중 발생한 에러
type CacheError struct {
	Operation string // get, set, delete 등
	Key       string // 캐시 키
	Err       error  // 원인 에러
}

func (e CacheError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cache error operation=%s key=%s", e.Operation, e.Key)
	}
	return fmt.Sprintf("cache error operation=%s key=%s: %v", e.Operation, e.Key, e.Err)
}

func (e CacheError) Unwrap() error { return e.Err }

// NewCacheError: 캐시 에러를 생성한다.
func NewCacheError(message, operation, key string, cause error) *CacheError {
	return &CacheError{
		Operation: operation,
		Key:       key,
		Err:       cause,
	}
}

// ValidationError: 입력 검증 실패 에러 (명령어 인자 형식 오류 등)
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("validation error field=%s: %s", e.Field, e.Message)
}

// NewValidationError: 검증 에러를 생성한다.
func NewValidationError(message, field string, value any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NotFoundError: 명령어 인자를 역할/채널/멤버로 변환하지 못했을 때의 에러
type NotFoundError struct {
	Kind  string // role, channel, member
	Query string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %q", e.Kind, e.Query)
}

// NewNotFoundError: 조회 실패 에러를 생성한다.
func NewNotFoundError(kind, query string) *NotFoundError {
	return &NotFoundError{Kind: kind, Query: query}
}

// ServiceError: 내부 서비스 로직 에러
type ServiceError struct {
	Service   string // 서비스 이름
	Operation string // 작업 이름
	Err       error  // 원인 에러
}

func (e ServiceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("service error service=%s operation=%s", e.Service, e.Operation)
	}
	return fmt.Sprintf("service error service=%s operation=%s: %v", e.Service, e.Operation, e.Err)
}

func (e ServiceError) Unwrap() error { return e.Err }

// NewServiceError: 서비스 에러를 생성한다.
func NewServiceError(message, service, operation string, cause error) *ServiceError {
	return &ServiceError{
		Service:   service,
		Operation: operation,
		Err:       cause,
	}
}
