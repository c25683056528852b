// Package ui provides terminal styling for switchenv CLI output.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Ayu 팔레트 기반의 상태 색상. 터미널 배경에 따라 Light/Dark 값이 선택된다.
var (
	// ColorPass는 정상 상태 색상이다.
	ColorPass = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#c2d94c"}
	// ColorWarn는 경고 상태 색상이다.
	ColorWarn = lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#ffb454"}
	// ColorFail는 실패 상태 색상이다.
	ColorFail = lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f07178"}
	// ColorMuted는 보조 텍스트 색상이다.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}
	// ColorAccent는 머리말 강조 색상이다.
	ColorAccent = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
)

// 상태별 전경색 스타일과 show 머리말 스타일.
var (
	// PassStyle은 정상 아이콘 스타일이다.
	PassStyle = lipgloss.NewStyle().Foreground(ColorPass)
	// WarnStyle은 경고 아이콘 스타일이다.
	WarnStyle = lipgloss.NewStyle().Foreground(ColorWarn)
	// FailStyle은 실패 아이콘 스타일이다.
	FailStyle = lipgloss.NewStyle().Foreground(ColorFail)
	// MutedStyle은 구분선과 부가 설명 스타일이다.
	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	// HeaderStyle은 show 머리말의 프로필 이름 스타일이다.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
)

// Status icons.
const (
	// IconPass는 정상 아이콘이다.
	IconPass = "✓"
	// IconWarn는 경고 아이콘이다.
	IconWarn = "⚠"
	// IconFail는 실패 아이콘이다.
	IconFail = "✗"
)

// headerRule은 show 출력에서 프로필을 구분하는 선이다.
var headerRule = "#" + strings.Repeat("=", 40)

// RenderProfileHeader는 show 출력의 프로필 머리말 세 줄을 만든다.
func RenderProfileHeader(name string) string {
	return strings.Join([]string{
		MutedStyle.Render(headerRule),
		HeaderStyle.Render("# " + name),
		MutedStyle.Render(headerRule),
	}, "\n")
}

// RenderMuted renders text with muted (gray) styling
func RenderMuted(s string) string {
	return MutedStyle.Render(s)
}

// RenderPassIcon renders the pass icon with styling
func RenderPassIcon() string {
	return PassStyle.Render(IconPass)
}

// RenderWarnIcon renders the warning icon with styling
func RenderWarnIcon() string {
	return WarnStyle.Render(IconWarn)
}

// RenderFailIcon renders the fail icon with styling
func RenderFailIcon() string {
	return FailStyle.Render(IconFail)
}
