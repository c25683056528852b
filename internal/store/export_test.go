package store

// SetBeforeVerify는 임시 파일 기록 직후 호출할 hook을 설정한다.
func SetBeforeVerify(s *Store, fn func(tempPath string)) {
	s.beforeVerify = fn
}
