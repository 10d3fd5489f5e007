package cdis

import (
	"github.com/sw-vish/cdisgw/internal/bitio"
	"github.com/sw-vish/cdisgw/internal/varint"
)

func init() {
	registerBody(PduTypeCreateEntity, func(buf *bitio.BitBuffer) (Body, error) { return readCreateEntity(buf) })
	registerBody(PduTypeRemoveEntity, func(buf *bitio.BitBuffer) (Body, error) { return readRemoveEntity(buf) })
	registerBody(PduTypeStartResume, func(buf *bitio.BitBuffer) (Body, error) { return readStartResume(buf) })
	registerBody(PduTypeStopFreeze, func(buf *bitio.BitBuffer) (Body, error) { return readStopFreeze(buf) })
	registerBody(PduTypeAcknowledge, func(buf *bitio.BitBuffer) (Body, error) { return readAcknowledge(buf) })
	registerBody(PduTypeActionRequest, func(buf *bitio.BitBuffer) (Body, error) { return readActionRequest(buf) })
	registerBody(PduTypeActionResponse, func(buf *bitio.BitBuffer) (Body, error) { return readActionResponse(buf) })
	registerBody(PduTypeDataQuery, func(buf *bitio.BitBuffer) (Body, error) { return readDataQuery(buf) })
	registerBody(PduTypeSetData, func(buf *bitio.BitBuffer) (Body, error) { return readSetData(buf) })
	registerBody(PduTypeData, func(buf *bitio.BitBuffer) (Body, error) { return readData(buf) })
	registerBody(PduTypeEventReport, func(buf *bitio.BitBuffer) (Body, error) { return readEventReport(buf) })
	registerBody(PduTypeComment, func(buf *bitio.BitBuffer) (Body, error) { return readComment(buf) })
}

// writeRecordIds/readRecordIds/bitSizeRecordIds implement the UVINT8-counted
// list of UVINT32 datum-type ids used by DataQuery's fixed/variable datum
// specification (dis-rs data_query/mod.rs: Vec<VariableRecordType>).
func writeRecordIds(buf *bitio.BitBuffer, ids []varint.VarInt) error {
	count := varint.New(varint.UVINT8, int64(len(ids)))
	if err := count.Encode(buf); err != nil {
		return err
	}
	for _, id := range ids {
		if err := id.Encode(buf); err != nil {
			return err
		}
	}
	return nil
}

func readRecordIds(buf *bitio.BitBuffer) ([]varint.VarInt, error) {
	count, err := varint.Decode(buf, varint.UVINT8)
	if err != nil {
		return nil, err
	}
	out := make([]varint.VarInt, 0, count.Value)
	for i := int64(0); i < count.Value; i++ {
		id, err := varint.Decode(buf, varint.UVINT32)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func bitSizeRecordIds(ids []varint.VarInt) int {
	n := varint.New(varint.UVINT8, int64(len(ids))).BitSize()
	for _, id := range ids {
		n += id.BitSize()
	}
	return n
}

func newRecordIds(ids []uint32) []varint.VarInt {
	out := make([]varint.VarInt, len(ids))
	for i, id := range ids {
		out[i] = varint.New(varint.UVINT32, int64(id))
	}
	return out
}

// CreateEntity/RemoveEntity request that a peer simulation create or remove
// an entity it manages (dis-rs common create_entity/remove_entity).
type CreateEntity struct {
	Originating, Receiving EntityId
	RequestId              varint.VarInt
}

func NewCreateEntity(originating, receiving EntityId, requestId uint32) CreateEntity {
	return CreateEntity{originating, receiving, varint.New(varint.UVINT32, int64(requestId))}
}

func (p CreateEntity) PduType() PduType      { return PduTypeCreateEntity }
func (p CreateEntity) Originator() *EntityId { return &p.Originating }
func (p CreateEntity) Receiver() *EntityId   { return &p.Receiving }
func (p CreateEntity) BitSizeOf() int {
	return p.Originating.BitSize() + p.Receiving.BitSize() + p.RequestId.BitSize()
}
func (p CreateEntity) Write(buf *bitio.BitBuffer) error {
	if err := p.Originating.Write(buf); err != nil {
		return err
	}
	if err := p.Receiving.Write(buf); err != nil {
		return err
	}
	return p.RequestId.Encode(buf)
}

func readCreateEntity(buf *bitio.BitBuffer) (CreateEntity, error) {
	orig, recv, reqId, err := readOriginReceiveRequest(buf)
	if err != nil {
		return CreateEntity{}, err
	}
	return CreateEntity{orig, recv, reqId}, nil
}

type RemoveEntity struct {
	Originating, Receiving EntityId
	RequestId              varint.VarInt
}

func NewRemoveEntity(originating, receiving EntityId, requestId uint32) RemoveEntity {
	return RemoveEntity{originating, receiving, varint.New(varint.UVINT32, int64(requestId))}
}

func (p RemoveEntity) PduType() PduType      { return PduTypeRemoveEntity }
func (p RemoveEntity) Originator() *EntityId { return &p.Originating }
func (p RemoveEntity) Receiver() *EntityId   { return &p.Receiving }
func (p RemoveEntity) BitSizeOf() int {
	return p.Originating.BitSize() + p.Receiving.BitSize() + p.RequestId.BitSize()
}
func (p RemoveEntity) Write(buf *bitio.BitBuffer) error {
	if err := p.Originating.Write(buf); err != nil {
		return err
	}
	if err := p.Receiving.Write(buf); err != nil {
		return err
	}
	return p.RequestId.Encode(buf)
}

func readRemoveEntity(buf *bitio.BitBuffer) (RemoveEntity, error) {
	orig, recv, reqId, err := readOriginReceiveRequest(buf)
	if err != nil {
		return RemoveEntity{}, err
	}
	return RemoveEntity{orig, recv, reqId}, nil
}

func readOriginReceiveRequest(buf *bitio.BitBuffer) (orig, recv EntityId, reqId varint.VarInt, err error) {
	orig, err = ReadEntityId(buf)
	if err != nil {
		return
	}
	recv, err = ReadEntityId(buf)
	if err != nil {
		return
	}
	reqId, err = varint.Decode(buf, varint.UVINT32)
	return
}

// StartResume directs a peer to start or resume simulation time.
type StartResume struct {
	Originating, Receiving EntityId
	RealWorldTime          CdisTimeStamp
	SimulationTime         CdisTimeStamp
	RequestId              varint.VarInt
}

func (p StartResume) PduType() PduType      { return PduTypeStartResume }
func (p StartResume) Originator() *EntityId { return &p.Originating }
func (p StartResume) Receiver() *EntityId   { return &p.Receiving }
func (p StartResume) BitSizeOf() int {
	return p.Originating.BitSize() + p.Receiving.BitSize() + p.RealWorldTime.BitSize() + p.SimulationTime.BitSize() + p.RequestId.BitSize()
}
func (p StartResume) Write(buf *bitio.BitBuffer) error {
	if err := p.Originating.Write(buf); err != nil {
		return err
	}
	if err := p.Receiving.Write(buf); err != nil {
		return err
	}
	if err := p.RealWorldTime.Write(buf); err != nil {
		return err
	}
	if err := p.SimulationTime.Write(buf); err != nil {
		return err
	}
	return p.RequestId.Encode(buf)
}

func readStartResume(buf *bitio.BitBuffer) (StartResume, error) {
	orig, err := ReadEntityId(buf)
	if err != nil {
		return StartResume{}, err
	}
	recv, err := ReadEntityId(buf)
	if err != nil {
		return StartResume{}, err
	}
	rwt, err := ReadCdisTimeStamp(buf)
	if err != nil {
		return StartResume{}, err
	}
	st, err := ReadCdisTimeStamp(buf)
	if err != nil {
		return StartResume{}, err
	}
	reqId, err := varint.Decode(buf, varint.UVINT32)
	if err != nil {
		return StartResume{}, err
	}
	return StartResume{orig, recv, rwt, st, reqId}, nil
}

// StopFreeze directs a peer to stop or freeze simulation time, with a reason
// and frozen-behavior code (dis-rs common stop_freeze).
type StopFreeze struct {
	Originating, Receiving EntityId
	RealWorldTime          CdisTimeStamp
	Reason                 varint.VarInt
	FrozenBehavior         varint.VarInt
	RequestId              varint.VarInt
}

func (p StopFreeze) PduType() PduType      { return PduTypeStopFreeze }
func (p StopFreeze) Originator() *EntityId { return &p.Originating }
func (p StopFreeze) Receiver() *EntityId   { return &p.Receiving }
func (p StopFreeze) BitSizeOf() int {
	return p.Originating.BitSize() + p.Receiving.BitSize() + p.RealWorldTime.BitSize() +
		p.Reason.BitSize() + p.FrozenBehavior.BitSize() + p.RequestId.BitSize()
}
func (p StopFreeze) Write(buf *bitio.BitBuffer) error {
	if err := p.Originating.Write(buf); err != nil {
		return err
	}
	if err := p.Receiving.Write(buf); err != nil {
		return err
	}
	if err := p.RealWorldTime.Write(buf); err != nil {
		return err
	}
	if err := p.Reason.Encode(buf); err != nil {
		return err
	}
	if err := p.FrozenBehavior.Encode(buf); err != nil {
		return err
	}
	return p.RequestId.Encode(buf)
}

func readStopFreeze(buf *bitio.BitBuffer) (StopFreeze, error) {
	orig, err := ReadEntityId(buf)
	if err != nil {
		return StopFreeze{}, err
	}
	recv, err := ReadEntityId(buf)
	if err != nil {
		return StopFreeze{}, err
	}
	rwt, err := ReadCdisTimeStamp(buf)
	if err != nil {
		return StopFreeze{}, err
	}
	reason, err := varint.Decode(buf, varint.UVINT8)
	if err != nil {
		return StopFreeze{}, err
	}
	behavior, err := varint.Decode(buf, varint.UVINT8)
	if err != nil {
		return StopFreeze{}, err
	}
	reqId, err := varint.Decode(buf, varint.UVINT32)
	if err != nil {
		return StopFreeze{}, err
	}
	return StopFreeze{orig, recv, rwt, reason, behavior, reqId}, nil
}

// Acknowledge carries the receiving simulation's response to a prior request
// (dis-rs common acknowledge/model.rs: acknowledge_flag, response_flag,
// request_id).
type Acknowledge struct {
	Originating, Receiving EntityId
	AcknowledgeFlag        varint.VarInt
	ResponseFlag           varint.VarInt
	RequestId              varint.VarInt
}

func NewAcknowledge(originating, receiving EntityId, acknowledgeFlag, responseFlag uint8, requestId uint32) Acknowledge {
	return Acknowledge{
		Originating:     originating,
		Receiving:       receiving,
		AcknowledgeFlag: varint.New(varint.UVINT8, int64(acknowledgeFlag)),
		ResponseFlag:    varint.New(varint.UVINT8, int64(responseFlag)),
		RequestId:       varint.New(varint.UVINT32, int64(requestId)),
	}
}

func (p Acknowledge) PduType() PduType      { return PduTypeAcknowledge }
func (p Acknowledge) Originator() *EntityId { return &p.Originating }
func (p Acknowledge) Receiver() *EntityId   { return &p.Receiving }
func (p Acknowledge) BitSizeOf() int {
	return p.Originating.BitSize() + p.Receiving.BitSize() + p.AcknowledgeFlag.BitSize() +
		p.ResponseFlag.BitSize() + p.RequestId.BitSize()
}
func (p Acknowledge) Write(buf *bitio.BitBuffer) error {
	if err := p.Originating.Write(buf); err != nil {
		return err
	}
	if err := p.Receiving.Write(buf); err != nil {
		return err
	}
	if err := p.AcknowledgeFlag.Encode(buf); err != nil {
		return err
	}
	if err := p.ResponseFlag.Encode(buf); err != nil {
		return err
	}
	return p.RequestId.Encode(buf)
}

func readAcknowledge(buf *bitio.BitBuffer) (Acknowledge, error) {
	orig, err := ReadEntityId(buf)
	if err != nil {
		return Acknowledge{}, err
	}
	recv, err := ReadEntityId(buf)
	if err != nil {
		return Acknowledge{}, err
	}
	ackFlag, err := varint.Decode(buf, varint.UVINT8)
	if err != nil {
		return Acknowledge{}, err
	}
	respFlag, err := varint.Decode(buf, varint.UVINT8)
	if err != nil {
		return Acknowledge{}, err
	}
	reqId, err := varint.Decode(buf, varint.UVINT32)
	if err != nil {
		return Acknowledge{}, err
	}
	return Acknowledge{orig, recv, ackFlag, respFlag, reqId}, nil
}

// datumBearing bundles the originating/receiving/request-id prefix and
// fixed/variable datum suffix shared by ActionRequest, ActionResponse,
// DataQuery, SetData, Data, and EventReport.
// NewDatumBearing builds the shared prefix/suffix for ActionRequest,
// ActionResponse, DataQuery, SetData, Data, and EventReport. Exported so
// conversion code outside this package can populate the embedded field.
func NewDatumBearing(originating, receiving EntityId, requestId varint.VarInt, fixed []FixedDatum, variable []VariableDatum) datumBearing {
	return datumBearing{originating, receiving, requestId, fixed, variable}
}

type datumBearing struct {
	Originating, Receiving EntityId
	RequestId              varint.VarInt
	FixedDatums            []FixedDatum
	VariableDatums         []VariableDatum
}

func (d datumBearing) bitSize() int {
	return d.Originating.BitSize() + d.Receiving.BitSize() + d.RequestId.BitSize() +
		bitSizeFixedDatums(d.FixedDatums) + bitSizeVariableDatums(d.VariableDatums)
}

func (d datumBearing) write(buf *bitio.BitBuffer) error {
	if err := d.Originating.Write(buf); err != nil {
		return err
	}
	if err := d.Receiving.Write(buf); err != nil {
		return err
	}
	if err := d.RequestId.Encode(buf); err != nil {
		return err
	}
	if err := writeFixedDatums(buf, d.FixedDatums); err != nil {
		return err
	}
	return writeVariableDatums(buf, d.VariableDatums)
}

func readDatumBearing(buf *bitio.BitBuffer) (datumBearing, error) {
	orig, err := ReadEntityId(buf)
	if err != nil {
		return datumBearing{}, err
	}
	recv, err := ReadEntityId(buf)
	if err != nil {
		return datumBearing{}, err
	}
	reqId, err := varint.Decode(buf, varint.UVINT32)
	if err != nil {
		return datumBearing{}, err
	}
	fixed, err := readFixedDatums(buf)
	if err != nil {
		return datumBearing{}, err
	}
	variable, err := readVariableDatums(buf)
	if err != nil {
		return datumBearing{}, err
	}
	return datumBearing{orig, recv, reqId, fixed, variable}, nil
}

// ActionRequest asks a peer to perform an action identified by ActionId,
// parameterized by fixed/variable datums (dis-rs common action_request).
type ActionRequest struct {
	datumBearing
	ActionId varint.VarInt
}

func (p ActionRequest) PduType() PduType      { return PduTypeActionRequest }
func (p ActionRequest) Originator() *EntityId { return &p.Originating }
func (p ActionRequest) Receiver() *EntityId   { return &p.Receiving }
func (p ActionRequest) BitSizeOf() int        { return p.datumBearing.bitSize() + p.ActionId.BitSize() }
func (p ActionRequest) Write(buf *bitio.BitBuffer) error {
	if err := p.Originating.Write(buf); err != nil {
		return err
	}
	if err := p.Receiving.Write(buf); err != nil {
		return err
	}
	if err := p.RequestId.Encode(buf); err != nil {
		return err
	}
	if err := p.ActionId.Encode(buf); err != nil {
		return err
	}
	if err := writeFixedDatums(buf, p.FixedDatums); err != nil {
		return err
	}
	return writeVariableDatums(buf, p.VariableDatums)
}

func readActionRequest(buf *bitio.BitBuffer) (ActionRequest, error) {
	orig, err := ReadEntityId(buf)
	if err != nil {
		return ActionRequest{}, err
	}
	recv, err := ReadEntityId(buf)
	if err != nil {
		return ActionRequest{}, err
	}
	reqId, err := varint.Decode(buf, varint.UVINT32)
	if err != nil {
		return ActionRequest{}, err
	}
	actionId, err := varint.Decode(buf, varint.UVINT32)
	if err != nil {
		return ActionRequest{}, err
	}
	fixed, err := readFixedDatums(buf)
	if err != nil {
		return ActionRequest{}, err
	}
	variable, err := readVariableDatums(buf)
	if err != nil {
		return ActionRequest{}, err
	}
	return ActionRequest{datumBearing{orig, recv, reqId, fixed, variable}, actionId}, nil
}

// ActionResponse reports the outcome of a requested action.
type ActionResponse struct {
	datumBearing
	ResponseStatus varint.VarInt
}

func (p ActionResponse) PduType() PduType      { return PduTypeActionResponse }
func (p ActionResponse) Originator() *EntityId { return &p.Originating }
func (p ActionResponse) Receiver() *EntityId   { return &p.Receiving }
func (p ActionResponse) BitSizeOf() int        { return p.datumBearing.bitSize() + p.ResponseStatus.BitSize() }
func (p ActionResponse) Write(buf *bitio.BitBuffer) error {
	if err := p.Originating.Write(buf); err != nil {
		return err
	}
	if err := p.Receiving.Write(buf); err != nil {
		return err
	}
	if err := p.RequestId.Encode(buf); err != nil {
		return err
	}
	if err := p.ResponseStatus.Encode(buf); err != nil {
		return err
	}
	if err := writeFixedDatums(buf, p.FixedDatums); err != nil {
		return err
	}
	return writeVariableDatums(buf, p.VariableDatums)
}

func readActionResponse(buf *bitio.BitBuffer) (ActionResponse, error) {
	orig, err := ReadEntityId(buf)
	if err != nil {
		return ActionResponse{}, err
	}
	recv, err := ReadEntityId(buf)
	if err != nil {
		return ActionResponse{}, err
	}
	reqId, err := varint.Decode(buf, varint.UVINT32)
	if err != nil {
		return ActionResponse{}, err
	}
	status, err := varint.Decode(buf, varint.UVINT8)
	if err != nil {
		return ActionResponse{}, err
	}
	fixed, err := readFixedDatums(buf)
	if err != nil {
		return ActionResponse{}, err
	}
	variable, err := readVariableDatums(buf)
	if err != nil {
		return ActionResponse{}, err
	}
	return ActionResponse{datumBearing{orig, recv, reqId, fixed, variable}, status}, nil
}

// DataQuery asks a peer to send Data PDUs for the listed fixed/variable
// datum types at a periodicity given by TimeInterval (dis-rs common
// data_query/mod.rs — the literal spec.md §8 scenario 2 round-trip).
type DataQuery struct {
	Originating, Receiving   EntityId
	RequestId                varint.VarInt
	TimeInterval              varint.VarInt
	FixedDatumIds             []varint.VarInt
	VariableDatumIds          []varint.VarInt
}

func NewDataQuery(originating, receiving EntityId, requestId, timeInterval uint32, fixedIds, variableIds []uint32) DataQuery {
	return DataQuery{
		Originating:      originating,
		Receiving:        receiving,
		RequestId:        varint.New(varint.UVINT32, int64(requestId)),
		TimeInterval:     varint.New(varint.UVINT32, int64(timeInterval)),
		FixedDatumIds:    newRecordIds(fixedIds),
		VariableDatumIds: newRecordIds(variableIds),
	}
}

func (p DataQuery) PduType() PduType      { return PduTypeDataQuery }
func (p DataQuery) Originator() *EntityId { return &p.Originating }
func (p DataQuery) Receiver() *EntityId   { return &p.Receiving }
func (p DataQuery) BitSizeOf() int {
	return p.Originating.BitSize() + p.Receiving.BitSize() + p.RequestId.BitSize() + p.TimeInterval.BitSize() +
		bitSizeRecordIds(p.FixedDatumIds) + bitSizeRecordIds(p.VariableDatumIds)
}
func (p DataQuery) Write(buf *bitio.BitBuffer) error {
	if err := p.Originating.Write(buf); err != nil {
		return err
	}
	if err := p.Receiving.Write(buf); err != nil {
		return err
	}
	if err := p.RequestId.Encode(buf); err != nil {
		return err
	}
	if err := p.TimeInterval.Encode(buf); err != nil {
		return err
	}
	if err := writeRecordIds(buf, p.FixedDatumIds); err != nil {
		return err
	}
	return writeRecordIds(buf, p.VariableDatumIds)
}

func readDataQuery(buf *bitio.BitBuffer) (DataQuery, error) {
	orig, err := ReadEntityId(buf)
	if err != nil {
		return DataQuery{}, err
	}
	recv, err := ReadEntityId(buf)
	if err != nil {
		return DataQuery{}, err
	}
	reqId, err := varint.Decode(buf, varint.UVINT32)
	if err != nil {
		return DataQuery{}, err
	}
	interval, err := varint.Decode(buf, varint.UVINT32)
	if err != nil {
		return DataQuery{}, err
	}
	fixedIds, err := readRecordIds(buf)
	if err != nil {
		return DataQuery{}, err
	}
	variableIds, err := readRecordIds(buf)
	if err != nil {
		return DataQuery{}, err
	}
	return DataQuery{orig, recv, reqId, interval, fixedIds, variableIds}, nil
}

// SetData pushes fixed/variable datum values to a peer (dis-rs set_data_r).
type SetData struct {
	datumBearing
}

func (p SetData) PduType() PduType      { return PduTypeSetData }
func (p SetData) Originator() *EntityId { return &p.Originating }
func (p SetData) Receiver() *EntityId   { return &p.Receiving }
func (p SetData) BitSizeOf() int        { return p.datumBearing.bitSize() }
func (p SetData) Write(buf *bitio.BitBuffer) error { return p.datumBearing.write(buf) }

func readSetData(buf *bitio.BitBuffer) (SetData, error) {
	d, err := readDatumBearing(buf)
	if err != nil {
		return SetData{}, err
	}
	return SetData{d}, nil
}

// Data responds to a DataQuery (or is sent unsolicited) with datum values.
type Data struct {
	datumBearing
}

func (p Data) PduType() PduType      { return PduTypeData }
func (p Data) Originator() *EntityId { return &p.Originating }
func (p Data) Receiver() *EntityId   { return &p.Receiving }
func (p Data) BitSizeOf() int        { return p.datumBearing.bitSize() }
func (p Data) Write(buf *bitio.BitBuffer) error { return p.datumBearing.write(buf) }

func readData(buf *bitio.BitBuffer) (Data, error) {
	d, err := readDatumBearing(buf)
	if err != nil {
		return Data{}, err
	}
	return Data{d}, nil
}

// EventReport notifies a peer of an event, identified by EventType, with
// supporting datums.
type EventReport struct {
	datumBearing
	EventType varint.VarInt
}

func (p EventReport) PduType() PduType      { return PduTypeEventReport }
func (p EventReport) Originator() *EntityId { return &p.Originating }
func (p EventReport) Receiver() *EntityId   { return &p.Receiving }
func (p EventReport) BitSizeOf() int        { return p.datumBearing.bitSize() + p.EventType.BitSize() }
func (p EventReport) Write(buf *bitio.BitBuffer) error {
	if err := p.Originating.Write(buf); err != nil {
		return err
	}
	if err := p.Receiving.Write(buf); err != nil {
		return err
	}
	if err := p.RequestId.Encode(buf); err != nil {
		return err
	}
	if err := p.EventType.Encode(buf); err != nil {
		return err
	}
	if err := writeFixedDatums(buf, p.FixedDatums); err != nil {
		return err
	}
	return writeVariableDatums(buf, p.VariableDatums)
}

func readEventReport(buf *bitio.BitBuffer) (EventReport, error) {
	orig, err := ReadEntityId(buf)
	if err != nil {
		return EventReport{}, err
	}
	recv, err := ReadEntityId(buf)
	if err != nil {
		return EventReport{}, err
	}
	reqId, err := varint.Decode(buf, varint.UVINT32)
	if err != nil {
		return EventReport{}, err
	}
	eventType, err := varint.Decode(buf, varint.UVINT32)
	if err != nil {
		return EventReport{}, err
	}
	fixed, err := readFixedDatums(buf)
	if err != nil {
		return EventReport{}, err
	}
	variable, err := readVariableDatums(buf)
	if err != nil {
		return EventReport{}, err
	}
	return EventReport{datumBearing{orig, recv, reqId, fixed, variable}, eventType}, nil
}

// Comment carries free-form variable datums with no fixed-datum section or
// request id (dis-rs common comment/model.rs).
type Comment struct {
	Originating, Receiving EntityId
	VariableDatums         []VariableDatum
}

func (p Comment) PduType() PduType      { return PduTypeComment }
func (p Comment) Originator() *EntityId { return &p.Originating }
func (p Comment) Receiver() *EntityId   { return &p.Receiving }
func (p Comment) BitSizeOf() int {
	return p.Originating.BitSize() + p.Receiving.BitSize() + bitSizeVariableDatums(p.VariableDatums)
}
func (p Comment) Write(buf *bitio.BitBuffer) error {
	if err := p.Originating.Write(buf); err != nil {
		return err
	}
	if err := p.Receiving.Write(buf); err != nil {
		return err
	}
	return writeVariableDatums(buf, p.VariableDatums)
}

func readComment(buf *bitio.BitBuffer) (Comment, error) {
	orig, err := ReadEntityId(buf)
	if err != nil {
		return Comment{}, err
	}
	recv, err := ReadEntityId(buf)
	if err != nil {
		return Comment{}, err
	}
	variable, err := readVariableDatums(buf)
	if err != nil {
		return Comment{}, err
	}
	return Comment{orig, recv, variable}, nil
}
