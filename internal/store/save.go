package store

import (
	"fmt"
	"os"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hbjs97/switchenv/internal/profile"
)

// save는 임시 파일에 기록하고, 다시 읽어 메모리 blob과 비교한 뒤 같을 때만 rename한다.
// 정식 파일은 쓰기 모드로 열지 않으므로 항상 이전 내용 또는 새 내용 중 하나다.
func (s *Store) save(b *profile.Blob) error {
	data, err := encodeBlob(b)
	if err != nil {
		return fmt.Errorf("store.save: %w", err)
	}

	tempPath := s.TempPath()
	if err := writeSynced(tempPath, data); err != nil {
		_ = os.Remove(tempPath) // 부분 기록된 임시 파일 정리
		return fmt.Errorf("store.save: %w", err)
	}

	if s.beforeVerify != nil {
		s.beforeVerify(tempPath)
	}

	if err := s.verify(tempPath, b); err != nil {
		s.logger.Warn("save abandoned, profiles file left untouched", "path", s.Path(), "error", err)
		_ = os.Remove(tempPath) // 검증 실패한 임시 파일은 남기지 않음
		return err
	}

	if err := os.Rename(tempPath, s.Path()); err != nil {
		return fmt.Errorf("store.save: %w", err)
	}
	s.logger.Debug("saved profiles", "path", s.Path(), "profiles", len(b.Profiles))
	return nil
}

func (s *Store) verify(tempPath string, want *profile.Blob) error {
	data, err := os.ReadFile(tempPath)
	if err != nil {
		return &profile.SaveVerificationError{TempPath: tempPath, Cause: err}
	}
	d, err := decodeBlob(data)
	if err != nil {
		return &profile.SaveVerificationError{TempPath: tempPath, Cause: err}
	}
	if d.legacy {
		return &profile.SaveVerificationError{TempPath: tempPath, Cause: fmt.Errorf("레거시 형식으로 기록됨")}
	}
	if diff := cmp.Diff(want, d.blob, cmpopts.EquateEmpty()); diff != "" {
		return &profile.SaveVerificationError{TempPath: tempPath, Diff: diff}
	}
	return nil
}

func writeSynced(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
