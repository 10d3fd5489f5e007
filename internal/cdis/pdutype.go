package cdis

// PduType is the 8-bit SISO PduType enumeration carried in the C-DIS header.
// Only the values listed in spec.md §6 are Supported/Implemented; every
// other value parses into an Unsupported variant that keeps the raw body bits.
type PduType uint8

const (
	PduTypeEntityState PduType = 1
	PduTypeFire         PduType = 2
	PduTypeDetonation   PduType = 3
	PduTypeCollision    PduType = 4

	PduTypeCreateEntity PduType = 11
	PduTypeRemoveEntity PduType = 12
	PduTypeStartResume  PduType = 13
	PduTypeStopFreeze   PduType = 14
	PduTypeAcknowledge  PduType = 15
	PduTypeActionRequest  PduType = 16
	PduTypeActionResponse PduType = 17
	PduTypeDataQuery      PduType = 18
	PduTypeSetData        PduType = 19
	PduTypeData           PduType = 20
	PduTypeEventReport    PduType = 21
	PduTypeComment        PduType = 22

	PduTypeElectromagneticEmission PduType = 23
	PduTypeDesignator              PduType = 24
	PduTypeTransmitter             PduType = 25
	PduTypeSignal                  PduType = 26
	PduTypeReceiver                PduType = 27

	PduTypeIFF PduType = 28
)

// supported is the closed set of PduType values this gateway's body codecs
// know how to parse and serialize (spec.md §6).
var supported = map[PduType]bool{
	PduTypeEntityState: true, PduTypeFire: true, PduTypeDetonation: true, PduTypeCollision: true,
	PduTypeCreateEntity: true, PduTypeRemoveEntity: true, PduTypeStartResume: true, PduTypeStopFreeze: true,
	PduTypeAcknowledge: true, PduTypeActionRequest: true, PduTypeActionResponse: true, PduTypeDataQuery: true,
	PduTypeSetData: true, PduTypeData: true, PduTypeEventReport: true, PduTypeComment: true,
	PduTypeElectromagneticEmission: true, PduTypeDesignator: true, PduTypeTransmitter: true,
	PduTypeSignal: true, PduTypeReceiver: true, PduTypeIFF: true,
}

// IsSupported reports whether t is in the C-DIS supported set.
func IsSupported(t PduType) bool { return supported[t] }
