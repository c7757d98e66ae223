package logic_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Yazawazi/undsm-peaky/internal/codec"
	"github.com/Yazawazi/undsm-peaky/internal/config"
	"github.com/Yazawazi/undsm-peaky/internal/logic"
)

func writeFile(t *testing.T, path string, content []byte) {
	t.Helper()

	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("writing %q: %v", path, err)
	}
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %q: %v", path, err)
	}

	return data
}

func TestRunHelloWorld(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "hello.txt")
	writeFile(t, input, []byte("hello world"))

	if err := logic.Run(&config.Config{Pack: true, Input: input, Quiet: true}); err != nil {
		t.Fatalf("pack: %v", err)
	}

	packed := filepath.Join(dir, "hello-pack.txt")
	text := readFile(t, packed)

	if string(text) != "ZJlXnOyxGEaLJMtzQVdlqA==" {
		t.Errorf("packed content = %q", text)
	}

	ciphertext, err := codec.DecodeBase64(string(text))
	if err != nil {
		t.Fatalf("decoding packed content: %v", err)
	}

	if len(ciphertext) != 16 {
		t.Errorf("ciphertext length = %d, want 16", len(ciphertext))
	}

	if err := logic.Run(&config.Config{Unpack: true, Input: packed, Quiet: true}); err != nil {
		t.Fatalf("unpack: %v", err)
	}

	if got := readFile(t, filepath.Join(dir, "hello-pack-unpack.txt")); string(got) != "hello world" {
		t.Errorf("unpacked content = %q, want %q", got, "hello world")
	}
}

func TestRunEmptyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "empty")
	packed := filepath.Join(dir, "empty.dsm")
	unpacked := filepath.Join(dir, "empty.out")

	writeFile(t, input, nil)

	if err := logic.Run(&config.Config{Pack: true, Input: input, Output: packed, Quiet: true}); err != nil {
		t.Fatalf("pack: %v", err)
	}

	ciphertext, err := codec.DecodeBase64(string(readFile(t, packed)))
	if err != nil {
		t.Fatalf("decoding packed content: %v", err)
	}

	if len(ciphertext) != 16 {
		t.Fatalf("ciphertext length = %d, want 16", len(ciphertext))
	}

	if err := logic.Run(&config.Config{Unpack: true, Input: packed, Output: unpacked, Quiet: true}); err != nil {
		t.Fatalf("unpack: %v", err)
	}

	if got := readFile(t, unpacked); len(got) != 0 {
		t.Errorf("unpacked content = %q, want empty", got)
	}
}

func TestRunRoundTripWithArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "data.bin")
	packed := filepath.Join(dir, "data.dsm")
	wrapped := filepath.Join(dir, "wrapped.dsm")
	unpacked := filepath.Join(dir, "data.out")

	plain := bytes.Repeat([]byte{0x00, 0xFF, 'a', '\n'}, 100)
	writeFile(t, input, plain)

	if err := logic.Run(&config.Config{Pack: true, Input: input, Output: packed, Quiet: true}); err != nil {
		t.Fatalf("pack: %v", err)
	}

	// Wrap the packed text at 64 columns with CRLF line endings.
	text := readFile(t, packed)

	var buf bytes.Buffer

	for len(text) > 64 {
		buf.Write(text[:64])
		buf.WriteString("\r\n")

		text = text[64:]
	}

	buf.Write(text)
	buf.WriteString("\n")

	writeFile(t, wrapped, buf.Bytes())

	if err := logic.Run(&config.Config{Unpack: true, Input: wrapped, Output: unpacked, Quiet: true}); err != nil {
		t.Fatalf("unpack: %v", err)
	}

	if got := readFile(t, unpacked); !bytes.Equal(got, plain) {
		t.Errorf("round trip mismatch: got %d bytes, want %d", len(got), len(plain))
	}
}

func TestRunOutputExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	output := filepath.Join(dir, "out.txt")

	writeFile(t, input, []byte("hello world"))
	writeFile(t, output, []byte("precious"))

	err := logic.Run(&config.Config{Pack: true, Input: input, Output: output, Quiet: true})
	if !errors.Is(err, logic.ErrOutputExists) {
		t.Fatalf("Run() error = %v, want %v", err, logic.ErrOutputExists)
	}

	if got := readFile(t, output); string(got) != "precious" {
		t.Errorf("existing output changed to %q", got)
	}

	if err := logic.Run(&config.Config{Pack: true, Input: input, Output: output, Force: true, Quiet: true}); err != nil {
		t.Fatalf("Run() with force: %v", err)
	}

	if got := readFile(t, output); string(got) != "ZJlXnOyxGEaLJMtzQVdlqA==" {
		t.Errorf("forced output = %q", got)
	}
}

func TestRunInputErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "missing", input: filepath.Join(dir, "missing.txt"), want: logic.ErrInputNotFound},
		{name: "directory", input: dir, want: logic.ErrInputNotRegularFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			output := filepath.Join(t.TempDir(), "out.txt")

			err := logic.Run(&config.Config{Unpack: true, Input: tt.input, Output: output, Quiet: true})
			if !errors.Is(err, tt.want) {
				t.Fatalf("Run() error = %v, want %v", err, tt.want)
			}

			if _, err := os.Stat(output); !os.IsNotExist(err) {
				t.Errorf("output created despite failure: %v", err)
			}
		})
	}
}

func TestRunCorruptInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    error
	}{
		{name: "malformed base64", content: "ZJlXnOyxGEaLJMtzQVdlqA=", want: codec.ErrMalformedBase64},
		{name: "short ciphertext", content: "AAAAAAAAAAAAAAAAAAAA", want: codec.ErrInvalidCiphertextLength},
		{name: "empty", content: "\n\n", want: codec.ErrInvalidCiphertextLength},
		{name: "bad padding", content: "rovtFiSEGfeAbVWRd/spfg==", want: codec.ErrInvalidPadding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			input := filepath.Join(dir, "broken.dsm")
			fresh := filepath.Join(dir, "fresh.txt")
			existing := filepath.Join(dir, "existing.txt")

			writeFile(t, input, []byte(tt.content))
			writeFile(t, existing, []byte("previous"))

			err := logic.Run(&config.Config{Unpack: true, Input: input, Output: fresh, Quiet: true})
			if !errors.Is(err, tt.want) {
				t.Fatalf("Run() error = %v, want %v", err, tt.want)
			}

			if _, err := os.Stat(fresh); !os.IsNotExist(err) {
				t.Errorf("output created despite failure: %v", err)
			}

			err = logic.Run(&config.Config{Unpack: true, Input: input, Output: existing, Force: true, Quiet: true})
			if !errors.Is(err, tt.want) {
				t.Fatalf("Run() with force error = %v, want %v", err, tt.want)
			}

			if got := readFile(t, existing); string(got) != "previous" {
				t.Errorf("existing output changed to %q", got)
			}

			leftovers, _ := filepath.Glob(filepath.Join(dir, ".tmp-*"))
			if len(leftovers) != 0 {
				t.Errorf("temporary files left behind: %v", leftovers)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		mode  config.Mode
		want  string
	}{
		{input: "secret.dsm", mode: config.ModeUnpack, want: "secret-unpack.txt"},
		{input: "notes.txt", mode: config.ModePack, want: "notes-pack.txt"},
		{input: "dir/archive.tar.gz", mode: config.ModePack, want: filepath.Join("dir", "archive.tar-pack.txt")},
		{input: "/abs/noext", mode: config.ModeUnpack, want: filepath.Join("/abs", "noext-unpack.txt")},
		{input: ".bashrc", mode: config.ModePack, want: ".bashrc-pack.txt"},
		{input: "trailing.", mode: config.ModePack, want: "trailing-pack.txt"},
	}

	for _, tt := range tests {
		if got := logic.OutputPath(tt.input, tt.mode); got != tt.want {
			t.Errorf("OutputPath(%q, %q) = %q, want %q", tt.input, tt.mode, got, tt.want)
		}
	}
}
