package internal

const (
	MaxNumberOfScreens = 12
	TokenMaxCount      = 20
	MaxBIP32PathLen    = 10
	TokenIDCharacters  = 7
	TitleLen           = 20
	TextLen            = 70
)

const (
	ErgoIDLen             = 32
	CompressedPubKeyLen   = 33
	AddressChecksumLen    = 4
	AddressLen            = 1 + CompressedPubKeyLen + AddressChecksumLen
	ErgFractionDigitCount = 9
)

const (
	AppName    = "Ergo"
	AppVersion = "1.0.0"
	Copyright  = "(c) 2024 Ergo"
)

const (
	ErgoCoinType  = 429
	HardenedIndex = 0x80000000
	DefChangePath = "m/44'/429'/0'/1/0"
)
