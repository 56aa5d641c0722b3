package commitment

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	bnmimc "github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	"github.com/pkg/errors"
)

// Salts are kept below 2^248 so they are always a canonical BN254 field
// element
const saltBytes = 31

// encode a value as a 32-byte big-endian field element
func feBytes(x *big.Int) []byte {
	b := x.Bytes()
	if len(b) == 32 {
		return b
	}
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}

func NewSalt() (*big.Int, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, errors.Wrap(err, "generating salt")
	}
	return new(big.Int).SetBytes(buf), nil
}

// Commit hashes the salt followed by one field element per cell with MiMC
// over BN254. cells holds 1 for ship segments and 0 elsewhere.
func Commit(cells []uint8, salt *big.Int) (*big.Int, error) {
	if salt.Sign() < 0 || salt.BitLen() > saltBytes*8 {
		return nil, errors.New("salt out of range")
	}

	h := bnmimc.NewMiMC()
	if _, err := h.Write(feBytes(salt)); err != nil {
		return nil, errors.Wrap(err, "hashing salt")
	}
	for i, cell := range cells {
		if cell > 1 {
			return nil, errors.Errorf("cell %d is not binary", i)
		}
		if _, err := h.Write(feBytes(new(big.Int).SetUint64(uint64(cell)))); err != nil {
			return nil, errors.Wrapf(err, "hashing cell %d", i)
		}
	}
	return new(big.Int).SetBytes(h.Sum(nil)), nil
}

func Hex(x *big.Int) string {
	return fmt.Sprintf("0x%x", x)
}

func ParseHex(s string) (*big.Int, error) {
	if len(s) < 3 || !strings.HasPrefix(s, "0x") {
		return nil, errors.Errorf("invalid hex %q", s)
	}
	x, ok := new(big.Int).SetString(s[2:], 16)
	if !ok {
		return nil, errors.Errorf("cannot parse hex %q", s)
	}
	return x, nil
}

// Verify reports whether cells and the revealed salt reproduce the
// published commitment
func Verify(cells []uint8, saltHex, commitmentHex string) (bool, error) {
	salt, err := ParseHex(saltHex)
	if err != nil {
		return false, errors.Wrap(err, "salt")
	}
	expected, err := ParseHex(commitmentHex)
	if err != nil {
		return false, errors.Wrap(err, "commitment")
	}

	actual, err := Commit(cells, salt)
	if err != nil {
		return false, err
	}
	return actual.Cmp(expected) == 0, nil
}
