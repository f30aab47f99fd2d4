// The pngmeta package reads and writes PNG tEXt chunks, the standard
// place for small textual key/value metadata in a PNG container. The
// stdlib png codec ignores ancillary chunks entirely, so the chunks
// are spliced into and scanned out of the encoded byte stream here;
// pixel data still goes through image/png untouched.
package pngmeta

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"io"
	"sort"
)

var signature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Encode writes img to w as a PNG with one tEXt chunk per entry of
// texts, placed directly after the IHDR chunk. Keys are written in
// sorted order so identical inputs produce identical files. PNG
// restricts keywords to 1-79 bytes without NUL; violating entries are
// rejected before anything is written.
func Encode(w io.Writer, img image.Image, texts map[string]string) error {
	keys := make([]string, 0, len(texts))
	for k := range texts {
		if err := checkKeyword(k); err != nil {
			return err
		}
		if bytes.IndexByte([]byte(texts[k]), 0) != -1 {
			return fmt.Errorf("text for %q contains a NUL byte", k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	raw := buf.Bytes()
	if !bytes.HasPrefix(raw, signature) {
		return fmt.Errorf("png encoder produced no signature")
	}

	// IHDR is always the first chunk; keep it first and insert the
	// tEXt chunks immediately after it.
	ihdrEnd, err := chunkEnd(raw, len(signature))
	if err != nil {
		return err
	}
	if _, err := w.Write(raw[:ihdrEnd]); err != nil {
		return err
	}
	for _, k := range keys {
		data := append(append([]byte(k), 0), texts[k]...)
		if err := writeChunk(w, "tEXt", data); err != nil {
			return err
		}
	}
	_, err = w.Write(raw[ihdrEnd:])
	return err
}

// Decode reads a PNG from r, returning both the decoded image and any
// tEXt metadata it carries. Images without tEXt chunks decode with an
// empty map.
func Decode(r io.Reader) (image.Image, map[string]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	texts, err := extract(raw)
	if err != nil {
		return nil, nil, err
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, nil, err
	}
	return img, texts, nil
}

// ReadText returns the tEXt metadata of a PNG without decoding its
// pixels.
func ReadText(r io.Reader) (map[string]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return extract(raw)
}

func checkKeyword(k string) error {
	if len(k) < 1 || len(k) > 79 {
		return fmt.Errorf("keyword %q length outside 1-79", k)
	}
	if bytes.IndexByte([]byte(k), 0) != -1 {
		return fmt.Errorf("keyword %q contains a NUL byte", k)
	}
	return nil
}

// chunkEnd returns the offset just past the chunk starting at off.
func chunkEnd(raw []byte, off int) (int, error) {
	if off+8 > len(raw) {
		return 0, fmt.Errorf("truncated png chunk header at %d", off)
	}
	length := int(binary.BigEndian.Uint32(raw[off : off+4]))
	end := off + 8 + length + 4
	if end > len(raw) {
		return 0, fmt.Errorf("truncated png chunk at %d", off)
	}
	return end, nil
}

func writeChunk(w io.Writer, typ string, data []byte) error {
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[:4], uint32(len(data)))
	copy(hdr[4:], typ)
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	crc := crc32.NewIEEE()
	crc.Write(hdr[4:])
	crc.Write(data)
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())
	_, err := w.Write(sum[:])
	return err
}

func extract(raw []byte) (map[string]string, error) {
	if !bytes.HasPrefix(raw, signature) {
		return nil, fmt.Errorf("not a png file")
	}
	texts := make(map[string]string)
	for off := len(signature); off < len(raw); {
		end, err := chunkEnd(raw, off)
		if err != nil {
			return nil, err
		}
		typ := string(raw[off+4 : off+8])
		if typ == "IEND" {
			break
		}
		if typ == "tEXt" {
			data := raw[off+8 : end-4]
			i := bytes.IndexByte(data, 0)
			if i < 1 {
				return nil, fmt.Errorf("malformed tEXt chunk at %d", off)
			}
			texts[string(data[:i])] = string(data[i+1:])
		}
		off = end
	}
	return texts, nil
}
