package prompt

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// ErrNotTerminal는 대화형 입력이 필요한데 stdin이 터미널이 아닐 때 반환된다.
var ErrNotTerminal = errors.New("대화형 선택에는 터미널이 필요합니다")

// Prompter는 대화형 선택/확인을 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 testutil.FakePrompter를 사용한다.
type Prompter interface {
	// Pick은 후보 중 하나를 고르게 한다. 사용자가 취소하면 ok=false다.
	Pick(title string, candidates []string) (choice string, ok bool, err error)

	// Confirm은 예/아니오 확인을 받는다. 취소는 false로 취급한다.
	Confirm(message string) (bool, error)
}

// HuhPrompter는 charmbracelet/huh 기반의 Prompter 구현이다.
type HuhPrompter struct{}

var _ Prompter = (*HuhPrompter)(nil)

// Pick은 필터링 가능한 선택 목록을 표시한다.
func (h *HuhPrompter) Pick(title string, candidates []string) (string, bool, error) {
	if len(candidates) == 0 {
		return "", false, nil
	}
	if !isTerminal() {
		return "", false, fmt.Errorf("prompt.Pick: %w", ErrNotTerminal)
	}

	options := make([]huh.Option[string], len(candidates))
	for i, c := range candidates {
		options[i] = huh.NewOption(c, c)
	}

	var selected string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(options...).
			Filtering(true).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("prompt.Pick: %w", err)
	}
	return selected, true, nil
}

// Confirm은 확인 프롬프트를 표시한다.
func (h *HuhPrompter) Confirm(message string) (bool, error) {
	if !isTerminal() {
		return false, fmt.Errorf("prompt.Confirm: %w", ErrNotTerminal)
	}

	var confirm bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Value(&confirm),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("prompt.Confirm: %w", err)
	}
	return confirm, nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
