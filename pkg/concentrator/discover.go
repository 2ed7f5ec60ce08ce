package concentrator

import "github.com/google/gousb"

// BoardInfo describes a USB-attached concentrator board.
type BoardInfo struct {
	Description string
	VendorID    uint16
	ProductID   uint16
	Bus         int
	Address     int
}

type knownUSBBoard struct {
	VendorID    uint16
	ProductID   uint16
	Description string
}

// USB bridge chips used by CoreCell USB reference designs.
var knownUSBBoards = []knownUSBBoard{
	{VendorID: 0x0483, ProductID: 0x5740, Description: "SX1302 USB CoreCell (STM32 VCP)"},
	{VendorID: 0x10c4, ProductID: 0xea60, Description: "SX1302 CoreCell (CP210x bridge)"},
}

// DiscoverBoards enumerates USB devices matching known concentrator bridge
// VID/PID pairs. Devices are not opened; only descriptor data is reported.
func DiscoverBoards(ctx *gousb.Context) ([]BoardInfo, error) {
	var boards []BoardInfo
	_, err := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		for _, known := range knownUSBBoards {
			if uint16(desc.Vendor) == known.VendorID && uint16(desc.Product) == known.ProductID {
				boards = append(boards, BoardInfo{
					Description: known.Description,
					VendorID:    known.VendorID,
					ProductID:   known.ProductID,
					Bus:         desc.Bus,
					Address:     desc.Address,
				})
			}
		}
		return false
	})
	if err != nil && err != gousb.ErrorAccess {
		return boards, err
	}
	return boards, nil
}
