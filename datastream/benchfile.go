package datastream

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
)

// 檔案格式（LittleEndian）：
// [8]byte  Magic: "SLBENCH1"
// uint16   Version: 1
// uint16   Reserved: 0
// uint32   DistCount
// 重複 DistCount 次：
//   int64   Key
//   float64 Weight
// uint64   OpCount
// 重複 OpCount 次：
//   uint8   OperationType (0=Query,1=Insert,2=Delete)
//   int64   Key

var (
	benchMagic   = [8]byte{'S', 'L', 'B', 'E', 'N', 'C', 'H', '1'}
	benchVersion = uint16(1)
)

// ErrInvalidBenchFile is returned when the header does not match SLBENCH1.
var ErrInvalidBenchFile = errors.New("invalid bench file")

type BenchFile struct {
	Dist map[int64]float64
	Ops  []Operation
}

// GenerateBenchFile 以 gen 產生 k 筆操作。
// 規則：
//   - 第一階段（k*phase1Ratio 筆）保證每個 key 至少出現一次，順序隨機洗牌
//   - key 不在表中時輸出 Insert
//   - key 已在表中時，deleteRatio 機率 Delete，其餘 Query
func GenerateBenchFile(gen KeyStream, k int, phase1Ratio, deleteRatio float64, seed int64) (*BenchFile, error) {
	if gen == nil {
		return nil, errors.New("nil KeyStream")
	}

	dist := gen.KeyMap()
	n := len(dist)
	phase1Size := int(float64(k) * phase1Ratio)

	if n == 0 {
		return nil, fmt.Errorf("empty key distribution")
	}
	if k < n {
		return nil, fmt.Errorf("k (%d) must be >= n (%d) to ensure each key appears at least once", k, n)
	}
	if phase1Size < n || phase1Size > k {
		return nil, fmt.Errorf("phase1Size (%d) must satisfy n <= phase1Size <= k", phase1Size)
	}
	if deleteRatio < 0.0 || deleteRatio > 1.0 {
		return nil, fmt.Errorf("deleteRatio (%v) must be between 0.0 and 1.0", deleteRatio)
	}

	r := rand.New(rand.NewSource(seed))

	keys := make([]int64, 0, k)
	for i := 0; i < n; i++ {
		keys = append(keys, int64(i))
	}
	for len(keys) < phase1Size {
		keys = append(keys, int64(gen.Next()))
	}
	r.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })

	// 第二階段直接取自 gen
	for len(keys) < k {
		keys = append(keys, int64(gen.Next()))
	}

	present := make(map[int64]bool, n)
	ops := make([]Operation, 0, k)

	for _, key := range keys {
		op := OpInsert
		if present[key] {
			if r.Float64() < deleteRatio {
				op = OpDelete
				present[key] = false
			} else {
				op = OpQuery
			}
		} else {
			present[key] = true
		}
		ops = append(ops, Operation{Type: op, Key: key})
	}

	return &BenchFile{Dist: dist, Ops: ops}, nil
}

// Encode 以 SLBENCH1 格式寫出，分布依 key 升冪輸出以確保可重現。
func (bf *BenchFile) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)

	keys := make([]int64, 0, len(bf.Dist))
	for k := range bf.Dist {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	header := []any{benchMagic, benchVersion, uint16(0), uint32(len(keys))}
	for _, v := range header {
		if err := binary.Write(bw, binary.LittleEndian, v); err != nil {
			return err
		}
	}

	for _, k := range keys {
		if err := binary.Write(bw, binary.LittleEndian, k); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, bf.Dist[k]); err != nil {
			return err
		}
	}

	if err := binary.Write(bw, binary.LittleEndian, uint64(len(bf.Ops))); err != nil {
		return err
	}

	for _, op := range bf.Ops {
		if err := binary.Write(bw, binary.LittleEndian, uint8(op.Type)); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, op.Key); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// DecodeBenchFile 讀取 SLBENCH1 格式，回傳分布與操作序列。
func DecodeBenchFile(r io.Reader) (*BenchFile, error) {
	br := bufio.NewReader(r)

	var magic [8]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return nil, err
	}
	if magic != benchMagic {
		return nil, fmt.Errorf("%w: magic %q", ErrInvalidBenchFile, magic)
	}

	var ver, reserved uint16
	if err := binary.Read(br, binary.LittleEndian, &ver); err != nil {
		return nil, err
	}
	if ver != benchVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidBenchFile, ver)
	}
	if err := binary.Read(br, binary.LittleEndian, &reserved); err != nil {
		return nil, err
	}

	var distCount uint32
	if err := binary.Read(br, binary.LittleEndian, &distCount); err != nil {
		return nil, err
	}
	dist := make(map[int64]float64, distCount)
	for i := uint32(0); i < distCount; i++ {
		var key int64
		var weight float64
		if err := binary.Read(br, binary.LittleEndian, &key); err != nil {
			return nil, err
		}
		if err := binary.Read(br, binary.LittleEndian, &weight); err != nil {
			return nil, err
		}
		dist[key] = weight
	}

	var opCount uint64
	if err := binary.Read(br, binary.LittleEndian, &opCount); err != nil {
		return nil, err
	}
	ops := make([]Operation, 0, opCount)
	for i := uint64(0); i < opCount; i++ {
		var t uint8
		var key int64
		if err := binary.Read(br, binary.LittleEndian, &t); err != nil {
			return nil, err
		}
		if err := binary.Read(br, binary.LittleEndian, &key); err != nil {
			return nil, err
		}
		if OperationType(t) > OpDelete {
			return nil, fmt.Errorf("%w: op %d has unknown type %d", ErrInvalidBenchFile, i, t)
		}
		ops = append(ops, Operation{Type: OperationType(t), Key: key})
	}

	return &BenchFile{Dist: dist, Ops: ops}, nil
}

// WriteBenchFile 將 bf 寫入 filename
func WriteBenchFile(filename string, bf *BenchFile) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := bf.Encode(file); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}

	return file.Close()
}

// ReadBenchFile 讀取 bin 檔案
func ReadBenchFile(filename string) (*BenchFile, error) {
	fd, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	bf, err := DecodeBenchFile(fd)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}

	return bf, nil
}

// ToSequenceModel 將 BenchFile 轉為可重播的 SequenceModel
func (bf *BenchFile) ToSequenceModel() *SequenceModel {
	if bf == nil {
		return NewSequenceModelFromOps(nil)
	}
	return NewSequenceModelFromOps(bf.Ops)
}
