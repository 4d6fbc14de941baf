package asm

// Mnemonic is an operation name.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	OP_INIT = Mnemonic(0) // init
	OP_COPY = Mnemonic(1) // copy
	OP_ADCP = Mnemonic(2) // adcp
	OP_STR  = Mnemonic(3) // str
	OP_ADL  = Mnemonic(4) // adl
	OP_ASN  = Mnemonic(5) // asn
	OP_LOAD = Mnemonic(6) // load
)

// mnemonicMap maps source mnemonics to operations.
var mnemonicMap = map[string]Mnemonic{
	"init": OP_INIT,
	"copy": OP_COPY,
	"adcp": OP_ADCP,
	"str":  OP_STR,
	"adl":  OP_ADL,
	"asn":  OP_ASN,
	"load": OP_LOAD,
}

// opcodeMap holds the assigned opcodes. Mnemonics missing here build, but do
// not encode.
var opcodeMap = map[Mnemonic]uint8{
	OP_INIT: 0x05,
	OP_STR:  0x07,
	OP_COPY: 0x0A,
	OP_ADCP: 0x0B,
}

// ParseMnemonic looks up a case sensitive operation name.
func ParseMnemonic(token string) (mn Mnemonic, err error) {
	mn, ok := mnemonicMap[token]
	if !ok {
		err = ErrOperation(token)
	}

	return
}

// Opcode returns the assigned opcode, if any.
func (mn Mnemonic) Opcode() (opcode uint8, ok bool) {
	opcode, ok = opcodeMap[mn]
	return
}
