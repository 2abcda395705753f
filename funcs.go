package zkpaillier

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
)

// The generated Groth16 parameters are large (the proving key of the
// 1024-bit template is hundreds of megabytes), so they are cached on disk
// next to a checksum stamp and streamed with a progress bar.

func stampPath(file string) string {
	return file + ".SHA256"
}

func writeStamped(dir, file, desc string, val io.WriterTo) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	var buf bytes.Buffer
	if _, err := val.WriteTo(&buf); err != nil {
		return err
	}
	sum := sha256.Sum256(buf.Bytes())
	if err := os.WriteFile(filepath.Join(dir, stampPath(file)), []byte(hex.EncodeToString(sum[:])), 0o644); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, file))
	if err != nil {
		return err
	}
	defer f.Close()
	bar := progressbar.DefaultBytes(int64(buf.Len()), desc)
	_, err = io.Copy(io.MultiWriter(f, bar), &buf)
	return err
}

func readStamped(dir, file, desc string, val io.ReaderFrom) error {
	data, err := os.ReadFile(filepath.Join(dir, file))
	if err != nil {
		return err
	}
	stamp, err := os.ReadFile(filepath.Join(dir, stampPath(file)))
	if err != nil {
		return err
	}
	sum := sha256.Sum256(data)
	if hex.EncodeToString(sum[:]) != string(stamp) {
		return fmt.Errorf("%s does not match its checksum stamp", file)
	}
	bar := progressbar.DefaultBytes(int64(len(data)), desc)
	_, err = val.ReadFrom(io.TeeReader(bytes.NewReader(data), bar))
	return err
}

// SavePk writes the prover bundle to dir under PK_FILE.
func SavePk(dir string, pk *Pk) error {
	return writeStamped(dir, PK_FILE, "writing proving key", pk)
}

// LoadPk reads a prover bundle previously written by SavePk, verifying its
// checksum stamp first.
func LoadPk(dir string) (*Pk, error) {
	var pk Pk
	if err := readStamped(dir, PK_FILE, "reading proving key", &pk); err != nil {
		return nil, err
	}
	return &pk, nil
}

// SaveVk writes the verifying key to dir under VK_FILE.
func SaveVk(dir string, vk Vk) error {
	return writeStamped(dir, VK_FILE, "writing verifying key", &vk)
}

// LoadVk reads a verifying key previously written by SaveVk.
func LoadVk(dir string) (Vk, error) {
	var vk Vk
	if err := readStamped(dir, VK_FILE, "reading verifying key", &vk); err != nil {
		return Vk{}, err
	}
	return vk, nil
}
