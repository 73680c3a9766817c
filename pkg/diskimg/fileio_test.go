// file: pkg/diskimg/fileio_test.go

package diskimg

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ha1tch/dos33/pkg/applesoft"
)

func TestWriteFile(t *testing.T) {
	t.Run("three full chunks take four sectors", func(t *testing.T) {
		disk := formattedDisk(t)
		payload := bytes.Repeat([]byte{0x42}, 3*BytesPerSector)

		sectors, err := disk.WriteFile("DATA", FileTypeBinary, payload)
		if err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if sectors != 4 {
			t.Errorf("sector count = %d, want 4 (3 data + 1 index)", sectors)
		}

		files, err := disk.Catalog()
		if err != nil {
			t.Fatalf("catalog failed: %v", err)
		}
		if len(files) != 1 || files[0].Sectors != 4 {
			t.Errorf("catalog entry sectors = %d, want 4", files[0].Sectors)
		}

		free, _ := disk.FreeSectorCount()
		if want := (TracksPerDisk-1)*SectorsPerTrack - 4; free != want {
			t.Errorf("free sectors = %d, want %d", free, want)
		}
	})

	t.Run("T/S list precedes data in allocation order", func(t *testing.T) {
		disk := formattedDisk(t)
		if _, err := disk.WriteFile("PROG", FileTypeBinary, []byte{1, 2, 3}); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		fe, err := disk.FindFile("PROG")
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if fe.TSTrack != 18 || fe.TSSector != 0 {
			t.Errorf("T/S list at (%d, %d), want (18, 0)", fe.TSTrack, fe.TSSector)
		}

		tsList, err := disk.GetSectorData(int(fe.TSTrack), int(fe.TSSector))
		if err != nil {
			t.Fatalf("reading T/S list: %v", err)
		}
		if tsList[0x0C] != 18 || tsList[0x0D] != 1 {
			t.Errorf("first data pair = (%d, %d), want (18, 1)", tsList[0x0C], tsList[0x0D])
		}
	})

	t.Run("read-back preserves data with zero padding", func(t *testing.T) {
		disk := formattedDisk(t)
		payload := bytes.Repeat([]byte{0x7E}, 700)
		if _, err := disk.WriteFile("PADDED", FileTypeBinary, payload); err != nil {
			t.Fatalf("write failed: %v", err)
		}

		got, err := disk.ReadFile("padded")
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if len(got) != 3*BytesPerSector {
			t.Fatalf("read length = %d, want %d", len(got), 3*BytesPerSector)
		}
		if !bytes.Equal(got[:700], payload) {
			t.Error("payload corrupted on read-back")
		}
		for i := 700; i < len(got); i++ {
			if got[i] != 0 {
				t.Fatalf("padding byte %d = %#x, want 0", i, got[i])
			}
		}
	})

	t.Run("empty payload still takes the index sector", func(t *testing.T) {
		disk := formattedDisk(t)
		sectors, err := disk.WriteFile("EMPTY", FileTypeText, nil)
		if err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if sectors != 1 {
			t.Errorf("sector count = %d, want 1", sectors)
		}
	})

	t.Run("payload beyond one index sector rejected up front", func(t *testing.T) {
		disk := formattedDisk(t)
		free, _ := disk.FreeSectorCount()

		payload := make([]byte, (MaxTSPairs+1)*BytesPerSector)
		_, err := disk.WriteFile("HUGE", FileTypeBinary, payload)
		if !errors.Is(err, ErrFileTooLarge) {
			t.Fatalf("want ErrFileTooLarge, got %v", err)
		}

		after, _ := disk.FreeSectorCount()
		if after != free {
			t.Errorf("rejected write leaked %d sectors", free-after)
		}
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		disk := formattedDisk(t)
		if _, err := disk.WriteFile("TWICE", FileTypeText, []byte("a")); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if _, err := disk.WriteFile("twice", FileTypeText, []byte("b")); !errors.Is(err, ErrFileExists) {
			t.Fatalf("want ErrFileExists, got %v", err)
		}
	})
}

func TestDeleteFile(t *testing.T) {
	disk := formattedDisk(t)
	free, _ := disk.FreeSectorCount()

	if _, err := disk.WriteFile("DOOMED", FileTypeBinary, make([]byte, 600)); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := disk.DeleteFile("DOOMED"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := disk.FindFile("DOOMED"); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("want ErrFileNotFound after delete, got %v", err)
	}

	after, _ := disk.FreeSectorCount()
	if after != free {
		t.Errorf("free sectors after delete = %d, want %d", after, free)
	}

	// The slot and the sectors are reusable.
	if _, err := disk.WriteFile("REPLACEMENT", FileTypeBinary, make([]byte, 600)); err != nil {
		t.Errorf("write after delete failed: %v", err)
	}
}

func TestSaveBasicProgram(t *testing.T) {
	disk := formattedDisk(t)
	source := "10 PRINT \"HELLO\"\n20 GOTO 10\n"

	sectors, err := disk.SaveBasicProgram("HELLO", source)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if sectors != 2 {
		t.Errorf("sector count = %d, want 2 (1 data + 1 index)", sectors)
	}

	fe, err := disk.FindFile("HELLO")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if fe.TypeLetter() != "A" {
		t.Errorf("type letter = %q, want A", fe.TypeLetter())
	}

	data, err := disk.ReadFile("HELLO")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	want := applesoft.Tokenize(source)
	if !bytes.Equal(data[:len(want)], want) {
		t.Error("stored program differs from tokenized source")
	}
}
