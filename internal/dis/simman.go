package dis

import "encoding/binary"

func init() {
	registerBody(PduTypeCreateEntity, func(buf []byte) (Body, error) { return unmarshalCreateEntity(buf) })
	registerBody(PduTypeRemoveEntity, func(buf []byte) (Body, error) { return unmarshalRemoveEntity(buf) })
	registerBody(PduTypeStartResume, func(buf []byte) (Body, error) { return unmarshalStartResume(buf) })
	registerBody(PduTypeStopFreeze, func(buf []byte) (Body, error) { return unmarshalStopFreeze(buf) })
	registerBody(PduTypeAcknowledge, func(buf []byte) (Body, error) { return unmarshalAcknowledge(buf) })
	registerBody(PduTypeActionRequest, func(buf []byte) (Body, error) { return unmarshalActionRequest(buf) })
	registerBody(PduTypeActionResponse, func(buf []byte) (Body, error) { return unmarshalActionResponse(buf) })
	registerBody(PduTypeDataQuery, func(buf []byte) (Body, error) { return unmarshalDataQuery(buf) })
	registerBody(PduTypeSetData, func(buf []byte) (Body, error) { return unmarshalSetData(buf) })
	registerBody(PduTypeData, func(buf []byte) (Body, error) { return unmarshalData(buf) })
	registerBody(PduTypeEventReport, func(buf []byte) (Body, error) { return unmarshalEventReport(buf) })
	registerBody(PduTypeComment, func(buf []byte) (Body, error) { return unmarshalComment(buf) })
}

func marshalFixedDatums(buf []byte, datums []FixedDatum) int {
	binary.BigEndian.PutUint32(buf, uint32(len(datums)))
	off := 4
	for _, d := range datums {
		d.Marshal(buf[off:])
		off += FixedDatumLength
	}
	return off
}

func unmarshalFixedDatums(buf []byte) ([]FixedDatum, int) {
	count := int(binary.BigEndian.Uint32(buf))
	off := 4
	out := make([]FixedDatum, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, UnmarshalFixedDatum(buf[off:]))
		off += FixedDatumLength
	}
	return out, off
}

func fixedDatumsLength(datums []FixedDatum) int { return 4 + len(datums)*FixedDatumLength }

func marshalVariableDatums(buf []byte, datums []VariableDatum) int {
	binary.BigEndian.PutUint32(buf, uint32(len(datums)))
	off := 4
	for _, d := range datums {
		off += d.Marshal(buf[off:])
	}
	return off
}

func unmarshalVariableDatums(buf []byte) ([]VariableDatum, int) {
	count := int(binary.BigEndian.Uint32(buf))
	off := 4
	out := make([]VariableDatum, 0, count)
	for i := 0; i < count; i++ {
		d, n := UnmarshalVariableDatum(buf[off:])
		out = append(out, d)
		off += n
	}
	return out, off
}

func variableDatumsLength(datums []VariableDatum) int {
	n := 4
	for _, d := range datums {
		n += d.paddedLength()
	}
	return n
}

// CreateEntity/RemoveEntity request entity lifecycle actions from a peer.
type CreateEntity struct {
	Originating, Receiving EntityId
	RequestId              uint32
}

func (p CreateEntity) PduType() PduType      { return PduTypeCreateEntity }
func (p CreateEntity) Originator() *EntityId { return &p.Originating }
func (p CreateEntity) Receiver() *EntityId   { return &p.Receiving }
func (p CreateEntity) Marshal() []byte {
	buf := make([]byte, EntityIdLength*2+4)
	p.Originating.Marshal(buf[0:])
	p.Receiving.Marshal(buf[EntityIdLength:])
	binary.BigEndian.PutUint32(buf[EntityIdLength*2:], p.RequestId)
	return buf
}

func unmarshalCreateEntity(buf []byte) (CreateEntity, error) {
	orig, recv, reqId := unmarshalOriginReceiveRequest(buf)
	return CreateEntity{orig, recv, reqId}, nil
}

type RemoveEntity struct {
	Originating, Receiving EntityId
	RequestId              uint32
}

func (p RemoveEntity) PduType() PduType      { return PduTypeRemoveEntity }
func (p RemoveEntity) Originator() *EntityId { return &p.Originating }
func (p RemoveEntity) Receiver() *EntityId   { return &p.Receiving }
func (p RemoveEntity) Marshal() []byte {
	buf := make([]byte, EntityIdLength*2+4)
	p.Originating.Marshal(buf[0:])
	p.Receiving.Marshal(buf[EntityIdLength:])
	binary.BigEndian.PutUint32(buf[EntityIdLength*2:], p.RequestId)
	return buf
}

func unmarshalRemoveEntity(buf []byte) (RemoveEntity, error) {
	orig, recv, reqId := unmarshalOriginReceiveRequest(buf)
	return RemoveEntity{orig, recv, reqId}, nil
}

func unmarshalOriginReceiveRequest(buf []byte) (orig, recv EntityId, reqId uint32) {
	orig = UnmarshalEntityId(buf[0:])
	recv = UnmarshalEntityId(buf[EntityIdLength:])
	reqId = binary.BigEndian.Uint32(buf[EntityIdLength*2:])
	return
}

// StartResume directs a peer to start/resume simulation time.
type StartResume struct {
	Originating, Receiving EntityId
	RealWorldTime          uint64
	SimulationTime         uint64
	RequestId              uint32
}

func (p StartResume) PduType() PduType      { return PduTypeStartResume }
func (p StartResume) Originator() *EntityId { return &p.Originating }
func (p StartResume) Receiver() *EntityId   { return &p.Receiving }
func (p StartResume) Marshal() []byte {
	buf := make([]byte, EntityIdLength*2+8+8+4)
	off := 0
	p.Originating.Marshal(buf[off:])
	off += EntityIdLength
	p.Receiving.Marshal(buf[off:])
	off += EntityIdLength
	binary.BigEndian.PutUint64(buf[off:], p.RealWorldTime)
	off += 8
	binary.BigEndian.PutUint64(buf[off:], p.SimulationTime)
	off += 8
	binary.BigEndian.PutUint32(buf[off:], p.RequestId)
	return buf
}

func unmarshalStartResume(buf []byte) (StartResume, error) {
	off := 0
	orig := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	recv := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	rwt := binary.BigEndian.Uint64(buf[off:])
	off += 8
	st := binary.BigEndian.Uint64(buf[off:])
	off += 8
	reqId := binary.BigEndian.Uint32(buf[off:])
	return StartResume{orig, recv, rwt, st, reqId}, nil
}

// StopFreeze directs a peer to stop/freeze simulation time.
type StopFreeze struct {
	Originating, Receiving EntityId
	RealWorldTime          uint64
	Reason                 uint8
	FrozenBehavior         uint8
	RequestId              uint32
}

func (p StopFreeze) PduType() PduType      { return PduTypeStopFreeze }
func (p StopFreeze) Originator() *EntityId { return &p.Originating }
func (p StopFreeze) Receiver() *EntityId   { return &p.Receiving }
func (p StopFreeze) Marshal() []byte {
	buf := make([]byte, EntityIdLength*2+8+1+1+2+4)
	off := 0
	p.Originating.Marshal(buf[off:])
	off += EntityIdLength
	p.Receiving.Marshal(buf[off:])
	off += EntityIdLength
	binary.BigEndian.PutUint64(buf[off:], p.RealWorldTime)
	off += 8
	buf[off] = p.Reason
	off++
	buf[off] = p.FrozenBehavior
	off += 1 + 2 // padding
	binary.BigEndian.PutUint32(buf[off:], p.RequestId)
	return buf
}

func unmarshalStopFreeze(buf []byte) (StopFreeze, error) {
	off := 0
	orig := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	recv := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	rwt := binary.BigEndian.Uint64(buf[off:])
	off += 8
	reason := buf[off]
	off++
	behavior := buf[off]
	off += 1 + 2
	reqId := binary.BigEndian.Uint32(buf[off:])
	return StopFreeze{orig, recv, rwt, reason, behavior, reqId}, nil
}

// Acknowledge carries a response to a prior request (dis-rs common
// acknowledge/model.rs).
type Acknowledge struct {
	Originating, Receiving EntityId
	AcknowledgeFlag        uint16
	ResponseFlag           uint16
	RequestId              uint32
}

func (p Acknowledge) PduType() PduType      { return PduTypeAcknowledge }
func (p Acknowledge) Originator() *EntityId { return &p.Originating }
func (p Acknowledge) Receiver() *EntityId   { return &p.Receiving }
func (p Acknowledge) Marshal() []byte {
	buf := make([]byte, EntityIdLength*2+2+2+4)
	off := 0
	p.Originating.Marshal(buf[off:])
	off += EntityIdLength
	p.Receiving.Marshal(buf[off:])
	off += EntityIdLength
	binary.BigEndian.PutUint16(buf[off:], p.AcknowledgeFlag)
	off += 2
	binary.BigEndian.PutUint16(buf[off:], p.ResponseFlag)
	off += 2
	binary.BigEndian.PutUint32(buf[off:], p.RequestId)
	return buf
}

func unmarshalAcknowledge(buf []byte) (Acknowledge, error) {
	off := 0
	orig := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	recv := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	ackFlag := binary.BigEndian.Uint16(buf[off:])
	off += 2
	respFlag := binary.BigEndian.Uint16(buf[off:])
	off += 2
	reqId := binary.BigEndian.Uint32(buf[off:])
	return Acknowledge{orig, recv, ackFlag, respFlag, reqId}, nil
}

// datumBearing is the originating/receiving/request-id prefix and
// fixed/variable datum suffix shared by ActionRequest, ActionResponse,
// SetData, Data, and EventReport.
type datumBearing struct {
	Originating, Receiving EntityId
	RequestId              uint32
	FixedDatums            []FixedDatum
	VariableDatums         []VariableDatum
}

// NewDatumBearing builds the shared prefix/suffix for ActionRequest,
// ActionResponse, SetData, Data, and EventReport. Exported so conversion
// code outside this package can populate the embedded field.
func NewDatumBearing(originating, receiving EntityId, requestId uint32, fixed []FixedDatum, variable []VariableDatum) datumBearing {
	return datumBearing{originating, receiving, requestId, fixed, variable}
}

func (d datumBearing) marshalInto(buf []byte) int {
	off := 0
	d.Originating.Marshal(buf[off:])
	off += EntityIdLength
	d.Receiving.Marshal(buf[off:])
	off += EntityIdLength
	binary.BigEndian.PutUint32(buf[off:], d.RequestId)
	off += 4
	off += marshalFixedDatums(buf[off:], d.FixedDatums)
	off += marshalVariableDatums(buf[off:], d.VariableDatums)
	return off
}

func (d datumBearing) length() int {
	return EntityIdLength*2 + 4 + fixedDatumsLength(d.FixedDatums) + variableDatumsLength(d.VariableDatums)
}

func unmarshalDatumBearing(buf []byte) (datumBearing, int) {
	off := 0
	orig := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	recv := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	reqId := binary.BigEndian.Uint32(buf[off:])
	off += 4
	fixed, n := unmarshalFixedDatums(buf[off:])
	off += n
	variable, n := unmarshalVariableDatums(buf[off:])
	off += n
	return datumBearing{orig, recv, reqId, fixed, variable}, off
}

// ActionRequest asks a peer to perform an action (dis-rs common
// action_request).
type ActionRequest struct {
	datumBearing
	ActionId uint32
}

func (p ActionRequest) PduType() PduType      { return PduTypeActionRequest }
func (p ActionRequest) Originator() *EntityId { return &p.Originating }
func (p ActionRequest) Receiver() *EntityId   { return &p.Receiving }
func (p ActionRequest) Marshal() []byte {
	buf := make([]byte, p.datumBearing.length()+4)
	off := 0
	p.Originating.Marshal(buf[off:])
	off += EntityIdLength
	p.Receiving.Marshal(buf[off:])
	off += EntityIdLength
	binary.BigEndian.PutUint32(buf[off:], p.RequestId)
	off += 4
	binary.BigEndian.PutUint32(buf[off:], p.ActionId)
	off += 4
	off += marshalFixedDatums(buf[off:], p.FixedDatums)
	marshalVariableDatums(buf[off:], p.VariableDatums)
	return buf
}

func unmarshalActionRequest(buf []byte) (ActionRequest, error) {
	off := 0
	orig := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	recv := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	reqId := binary.BigEndian.Uint32(buf[off:])
	off += 4
	actionId := binary.BigEndian.Uint32(buf[off:])
	off += 4
	fixed, n := unmarshalFixedDatums(buf[off:])
	off += n
	variable, _ := unmarshalVariableDatums(buf[off:])
	return ActionRequest{datumBearing{orig, recv, reqId, fixed, variable}, actionId}, nil
}

// ActionResponse reports the outcome of a requested action.
type ActionResponse struct {
	datumBearing
	ResponseStatus uint32
}

func (p ActionResponse) PduType() PduType      { return PduTypeActionResponse }
func (p ActionResponse) Originator() *EntityId { return &p.Originating }
func (p ActionResponse) Receiver() *EntityId   { return &p.Receiving }
func (p ActionResponse) Marshal() []byte {
	buf := make([]byte, p.datumBearing.length()+4)
	off := 0
	p.Originating.Marshal(buf[off:])
	off += EntityIdLength
	p.Receiving.Marshal(buf[off:])
	off += EntityIdLength
	binary.BigEndian.PutUint32(buf[off:], p.RequestId)
	off += 4
	binary.BigEndian.PutUint32(buf[off:], p.ResponseStatus)
	off += 4
	off += marshalFixedDatums(buf[off:], p.FixedDatums)
	marshalVariableDatums(buf[off:], p.VariableDatums)
	return buf
}

func unmarshalActionResponse(buf []byte) (ActionResponse, error) {
	off := 0
	orig := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	recv := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	reqId := binary.BigEndian.Uint32(buf[off:])
	off += 4
	status := binary.BigEndian.Uint32(buf[off:])
	off += 4
	fixed, n := unmarshalFixedDatums(buf[off:])
	off += n
	variable, _ := unmarshalVariableDatums(buf[off:])
	return ActionResponse{datumBearing{orig, recv, reqId, fixed, variable}, status}, nil
}

// DataQuery asks a peer to send Data PDUs for the listed fixed/variable
// datum types (dis-rs common data_query/mod.rs).
type DataQuery struct {
	Originating, Receiving EntityId
	RequestId              uint32
	TimeInterval            uint32
	FixedDatumIds           []uint32
	VariableDatumIds        []uint32
}

func (p DataQuery) PduType() PduType      { return PduTypeDataQuery }
func (p DataQuery) Originator() *EntityId { return &p.Originating }
func (p DataQuery) Receiver() *EntityId   { return &p.Receiving }
func (p DataQuery) Marshal() []byte {
	n := EntityIdLength*2 + 4 + 4 + 4 + len(p.FixedDatumIds)*4 + 4 + len(p.VariableDatumIds)*4
	buf := make([]byte, n)
	off := 0
	p.Originating.Marshal(buf[off:])
	off += EntityIdLength
	p.Receiving.Marshal(buf[off:])
	off += EntityIdLength
	binary.BigEndian.PutUint32(buf[off:], p.RequestId)
	off += 4
	binary.BigEndian.PutUint32(buf[off:], p.TimeInterval)
	off += 4
	binary.BigEndian.PutUint32(buf[off:], uint32(len(p.FixedDatumIds)))
	off += 4
	for _, id := range p.FixedDatumIds {
		binary.BigEndian.PutUint32(buf[off:], id)
		off += 4
	}
	binary.BigEndian.PutUint32(buf[off:], uint32(len(p.VariableDatumIds)))
	off += 4
	for _, id := range p.VariableDatumIds {
		binary.BigEndian.PutUint32(buf[off:], id)
		off += 4
	}
	return buf
}

func unmarshalDataQuery(buf []byte) (DataQuery, error) {
	off := 0
	orig := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	recv := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	reqId := binary.BigEndian.Uint32(buf[off:])
	off += 4
	interval := binary.BigEndian.Uint32(buf[off:])
	off += 4
	fixedCount := int(binary.BigEndian.Uint32(buf[off:]))
	off += 4
	fixedIds := make([]uint32, fixedCount)
	for i := range fixedIds {
		fixedIds[i] = binary.BigEndian.Uint32(buf[off:])
		off += 4
	}
	variableCount := int(binary.BigEndian.Uint32(buf[off:]))
	off += 4
	variableIds := make([]uint32, variableCount)
	for i := range variableIds {
		variableIds[i] = binary.BigEndian.Uint32(buf[off:])
		off += 4
	}
	return DataQuery{orig, recv, reqId, interval, fixedIds, variableIds}, nil
}

// SetData pushes fixed/variable datum values to a peer (dis-rs set_data_r).
type SetData struct{ datumBearing }

func (p SetData) PduType() PduType      { return PduTypeSetData }
func (p SetData) Originator() *EntityId { return &p.Originating }
func (p SetData) Receiver() *EntityId   { return &p.Receiving }
func (p SetData) Marshal() []byte {
	buf := make([]byte, p.datumBearing.length())
	p.datumBearing.marshalInto(buf)
	return buf
}

func unmarshalSetData(buf []byte) (SetData, error) {
	d, _ := unmarshalDatumBearing(buf)
	return SetData{d}, nil
}

// Data responds to a DataQuery with datum values.
type Data struct{ datumBearing }

func (p Data) PduType() PduType      { return PduTypeData }
func (p Data) Originator() *EntityId { return &p.Originating }
func (p Data) Receiver() *EntityId   { return &p.Receiving }
func (p Data) Marshal() []byte {
	buf := make([]byte, p.datumBearing.length())
	p.datumBearing.marshalInto(buf)
	return buf
}

func unmarshalData(buf []byte) (Data, error) {
	d, _ := unmarshalDatumBearing(buf)
	return Data{d}, nil
}

// EventReport notifies a peer of an event with supporting datums.
type EventReport struct {
	datumBearing
	EventType uint32
}

func (p EventReport) PduType() PduType      { return PduTypeEventReport }
func (p EventReport) Originator() *EntityId { return &p.Originating }
func (p EventReport) Receiver() *EntityId   { return &p.Receiving }
func (p EventReport) Marshal() []byte {
	buf := make([]byte, p.datumBearing.length()+4)
	off := 0
	p.Originating.Marshal(buf[off:])
	off += EntityIdLength
	p.Receiving.Marshal(buf[off:])
	off += EntityIdLength
	binary.BigEndian.PutUint32(buf[off:], p.RequestId)
	off += 4
	binary.BigEndian.PutUint32(buf[off:], p.EventType)
	off += 4
	off += marshalFixedDatums(buf[off:], p.FixedDatums)
	marshalVariableDatums(buf[off:], p.VariableDatums)
	return buf
}

func unmarshalEventReport(buf []byte) (EventReport, error) {
	off := 0
	orig := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	recv := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	reqId := binary.BigEndian.Uint32(buf[off:])
	off += 4
	eventType := binary.BigEndian.Uint32(buf[off:])
	off += 4
	fixed, n := unmarshalFixedDatums(buf[off:])
	off += n
	variable, _ := unmarshalVariableDatums(buf[off:])
	return EventReport{datumBearing{orig, recv, reqId, fixed, variable}, eventType}, nil
}

// Comment carries free-form variable datums (dis-rs common comment/model.rs).
type Comment struct {
	Originating, Receiving EntityId
	VariableDatums         []VariableDatum
}

func (p Comment) PduType() PduType      { return PduTypeComment }
func (p Comment) Originator() *EntityId { return &p.Originating }
func (p Comment) Receiver() *EntityId   { return &p.Receiving }
func (p Comment) Marshal() []byte {
	buf := make([]byte, EntityIdLength*2+variableDatumsLength(p.VariableDatums))
	off := 0
	p.Originating.Marshal(buf[off:])
	off += EntityIdLength
	p.Receiving.Marshal(buf[off:])
	off += EntityIdLength
	marshalVariableDatums(buf[off:], p.VariableDatums)
	return buf
}

func unmarshalComment(buf []byte) (Comment, error) {
	off := 0
	orig := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	recv := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	variable, _ := unmarshalVariableDatums(buf[off:])
	return Comment{orig, recv, variable}, nil
}
