package concentrator

// regField describes where a register's value lives on the chip: the page it
// sits on, the byte address of its first byte, and the bit field inside the
// word. Sign marks fields that read back as two's complement.
type regField struct {
	page   uint8
	addr   uint16
	offset uint8
	size   uint8
	signed bool
}

// regTable maps catalog register indices to their physical fields. This is
// the subset of the SX1302 register file this HAL build knows how to reach;
// a catalog may describe more, and those reads fail individually with
// ErrUnknownRegister.
var regTable = map[int]regField{
	// COMMON block, page 0
	0:  {page: 0, addr: 0x5600, offset: 0, size: 2}, // COMMON_PAGE_PAGE
	1:  {page: 0, addr: 0x5601, offset: 0, size: 1}, // COMMON_CTRL0_CLK32_RIF_CTRL
	2:  {page: 0, addr: 0x5601, offset: 1, size: 1}, // COMMON_CTRL0_HOST_RADIO_CTRL
	3:  {page: 0, addr: 0x5601, offset: 2, size: 1}, // COMMON_CTRL0_RADIO_MISC_EN
	4:  {page: 0, addr: 0x5601, offset: 3, size: 1}, // COMMON_CTRL0_SX1261_MODE_RADIO_B
	5:  {page: 0, addr: 0x5602, offset: 0, size: 1}, // COMMON_CTRL1_SWAP_IQ
	6:  {page: 0, addr: 0x5602, offset: 1, size: 1}, // COMMON_CTRL1_SAMPLING_EDGE_RADIO_A
	7:  {page: 0, addr: 0x5602, offset: 2, size: 1}, // COMMON_CTRL1_SAMPLING_EDGE_RADIO_B
	8:  {page: 0, addr: 0x5603, offset: 0, size: 8}, // COMMON_SPI_DIV_RATIO_SPI_HALF_PERIOD
	9:  {page: 0, addr: 0x5604, offset: 0, size: 2}, // COMMON_RADIO_SELECT_RADIO_SELECT
	10: {page: 0, addr: 0x5605, offset: 0, size: 1}, // COMMON_GEN_GLOBAL_EN
	11: {page: 0, addr: 0x5605, offset: 1, size: 1}, // COMMON_GEN_FSK_MODEM_ENABLE
	12: {page: 0, addr: 0x5605, offset: 2, size: 1}, // COMMON_GEN_CONCENTRATOR_MODEM_ENABLE
	13: {page: 0, addr: 0x5605, offset: 3, size: 1}, // COMMON_GEN_MBWSSF_MODEM_ENABLE
	14: {page: 0, addr: 0x5607, offset: 0, size: 8}, // COMMON_VERSION_VERSION
	15: {page: 0, addr: 0x5608, offset: 0, size: 8}, // COMMON_DUMMY_DUMMY

	// AGC MCU block, page 0
	16: {page: 0, addr: 0x5780, offset: 0, size: 1},              // AGC_MCU_CTRL_CLK_EN
	17: {page: 0, addr: 0x5780, offset: 1, size: 1},              // AGC_MCU_CTRL_FORCE_HOST_FE_CTRL
	18: {page: 0, addr: 0x5780, offset: 2, size: 1},              // AGC_MCU_CTRL_MCU_CLEAR
	19: {page: 0, addr: 0x5780, offset: 3, size: 1},              // AGC_MCU_CTRL_HOST_PROG
	20: {page: 0, addr: 0x5780, offset: 4, size: 1},              // AGC_MCU_CTRL_PARITY_ERROR
	21: {page: 0, addr: 0x5781, offset: 0, size: 8},              // AGC_MCU_MCU_AGC_STATUS
	22: {page: 0, addr: 0x5782, offset: 0, size: 8, signed: true}, // AGC_MCU_RF_EN_A_RADIO_RST

	// Arbiter MCU block, page 0
	24: {page: 0, addr: 0x57A0, offset: 0, size: 1}, // ARB_MCU_CTRL_CLK_EN
	25: {page: 0, addr: 0x57A0, offset: 1, size: 1}, // ARB_MCU_CTRL_MCU_CLEAR
	26: {page: 0, addr: 0x57A1, offset: 0, size: 8}, // ARB_MCU_MCU_ARB_STATUS

	// Radio front-end block, page 1
	32: {page: 1, addr: 0x5500, offset: 0, size: 1},               // RADIO_FE_GLBL_CTRL_DECIM_B_CLR
	33: {page: 1, addr: 0x5500, offset: 1, size: 1},               // RADIO_FE_GLBL_CTRL_DECIM_A_CLR
	34: {page: 1, addr: 0x5501, offset: 0, size: 6, signed: true}, // RADIO_FE_RSSI_BB_FILTER_ALPHA
	35: {page: 1, addr: 0x5502, offset: 0, size: 6, signed: true}, // RADIO_FE_RSSI_DEC_FILTER_ALPHA
	36: {page: 1, addr: 0x5503, offset: 0, size: 8, signed: true}, // RADIO_FE_RSSI_DB_DEF_RSSI_DB_DEFAULT_VALUE
	37: {page: 1, addr: 0x5504, offset: 0, size: 8, signed: true}, // RADIO_FE_RSSI_DEC_DEF_RSSI_DEC_DEFAULT_VALUE

	// RX top block, page 2
	48: {page: 2, addr: 0x5400, offset: 0, size: 8}, // RX_TOP_RX_DFE_AGC0_RADIO_GAIN_A
	49: {page: 2, addr: 0x5401, offset: 0, size: 8}, // RX_TOP_RX_DFE_AGC0_RADIO_GAIN_B
	50: {page: 2, addr: 0x5402, offset: 0, size: 1}, // RX_TOP_RX_DFE_AGC1_FORCE_DEFAULT_FIR
	51: {page: 2, addr: 0x5402, offset: 1, size: 1}, // RX_TOP_RX_DFE_AGC1_DC_COMP_EN
	52: {page: 2, addr: 0x5403, offset: 0, size: 8}, // RX_TOP_RX_DFE_GAIN_DROP_COMP

	// TX top block, page 3
	64: {page: 3, addr: 0x5200, offset: 0, size: 1}, // TX_TOP_A_TX_TRIG_TX_TRIG_IMMEDIATE
	65: {page: 3, addr: 0x5200, offset: 1, size: 1}, // TX_TOP_A_TX_TRIG_TX_TRIG_DELAYED
	66: {page: 3, addr: 0x5200, offset: 2, size: 1}, // TX_TOP_A_TX_TRIG_TX_TRIG_GPS
	67: {page: 3, addr: 0x5201, offset: 0, size: 8}, // TX_TOP_A_TX_START_DELAY_MSB
	68: {page: 3, addr: 0x5202, offset: 0, size: 8}, // TX_TOP_A_TX_START_DELAY_LSB
}
