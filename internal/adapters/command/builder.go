// Package command builds platform-idiomatic jump command strings.
package command

import (
	"strconv"
	"strings"

	"go.trai.ch/leap/internal/adapters/cache"
	"go.trai.ch/leap/internal/core/domain"
	"go.trai.ch/zerr"
)

// strategy maps (editorPath, filePath, line) to an exact command string.
type strategy func(editorPath, filePath string, line int) string

// strategies is the closed platform dispatch table. The legitimate
// variants are small and fixed; anything else takes the unsupported path.
var strategies = map[domain.Platform]strategy{
	domain.PlatformWindows: buildWindows,
	domain.PlatformDarwin:  buildUnix,
	domain.PlatformLinux:   buildUnix,
}

// Builder implements ports.CommandBuilder for one target platform.
//
// Built commands may be cached with a short TTL: the same
// (editor, platform, file, line) tuple yields the same command until the
// entry expires. Callers tolerate staleness only within that window.
type Builder struct {
	platform domain.Platform
	commands *cache.Scope
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithCommandCache enables caching of built commands in the given scope.
func WithCommandCache(scope *cache.Scope) BuilderOption {
	return func(b *Builder) { b.commands = scope }
}

// NewBuilder creates a builder for the given platform.
func NewBuilder(platform domain.Platform, opts ...BuilderOption) *Builder {
	b := &Builder{platform: platform}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build constructs the jump command for the editor and target. Invalid
// input is rejected before any construction or caching happens.
func (b *Builder) Build(editor domain.EditorConfig, target domain.ProjectContext) (string, error) {
	if editor.Path == "" {
		return "", domain.ErrEmptyEditorPath
	}
	if target.FilePath == "" {
		return "", domain.ErrEmptyFilePath
	}
	if err := domain.ValidateLine(target.Line); err != nil {
		return "", err
	}

	build, ok := strategies[b.platform]
	if !ok {
		return "", zerr.With(domain.ErrUnsupportedPlatform, "platform", b.platform.String())
	}

	key := b.cacheKey(editor, target)
	if b.commands != nil {
		if v, ok := b.commands.Get(key); ok {
			if cmd, ok := v.(string); ok {
				return cmd, nil
			}
		}
	}

	cmd := build(editor.Path, target.FilePath, target.Line)
	if b.commands != nil {
		b.commands.Set(key, cmd)
	}
	return cmd, nil
}

// cacheKey fingerprints the full tuple. The file and line are part of the
// key because they are embedded in the command itself.
func (b *Builder) cacheKey(editor domain.EditorConfig, target domain.ProjectContext) string {
	raw := strings.Join([]string{
		editor.ID,
		b.platform.String(),
		target.FilePath,
		strconv.Itoa(target.Line),
	}, "|")
	return "cmd:" + cache.Fingerprint(raw)
}

// buildWindows emits `"<editor>" --line <n> "<file>"` with embedded
// backslashes escaped.
func buildWindows(editorPath, filePath string, line int) string {
	return quoteWindows(editorPath) + " --line " + strconv.Itoa(line) + " " + quoteWindows(filePath)
}

// buildUnix single-quotes the editor, double-quotes the file, and wraps
// the launch in the detaching background idiom so the external GUI app's
// lifetime is independent of the host process.
func buildUnix(editorPath, filePath string, line int) string {
	return "nohup " + quoteSingle(editorPath) +
		" --line " + strconv.Itoa(line) + " " +
		quoteDouble(filePath) +
		" > /dev/null 2>&1 &"
}
