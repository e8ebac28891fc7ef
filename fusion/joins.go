package fusion

// Join numbers on the Fusion symbol. Digital and serial joins share one
// numbering space per direction.
const (
	// digital outputs
	JoinSystemPower uint32 = 3
	JoinInCall      uint32 = 50

	// digital inputs raised by Fusion
	JoinPowerOnRequest  uint32 = 3
	JoinPowerOffRequest uint32 = 4

	// analog outputs
	JoinLayout      uint32 = 1
	JoinCallSeconds uint32 = 50
	JoinBlockCount  uint32 = 60

	// serial outputs
	JoinRoomName      uint32 = 1
	JoinRoomGUID      uint32 = 2
	JoinCurrentSource uint32 = 3
	JoinLayoutName    uint32 = 4
	JoinCallState     uint32 = 50
	JoinRemoteParty   uint32 = 51
	JoinDeviceName    uint32 = 60

	// serial ranges addressed by index
	JoinDestinationBase uint32 = 10
	JoinBlockBase       uint32 = 61
)

const (
	MaxDestinations = 10
	MaxBlocks       = 20
)
