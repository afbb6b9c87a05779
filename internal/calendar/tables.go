package calendar

// Table layout
//
// lunarMonthDays holds one record per lunar year starting at tableBaseYear:
//
//	bits 0-12  month lengths, slot i at bit 12-i (1 = 30 days, 0 = 29 days)
//	bits 13-16 leap month (0 = none, 1-12 = month that is doubled)
//
// When a year has a leap month the slots run 1..leap, leap', leap+1..12,
// so there are 13 meaningful slots; otherwise only slots 0-11 are used.
//
// solarNewYear holds the Gregorian date of each lunar new year:
//
//	bits 0-4   day
//	bits 5-8   month
//	bits 9-20  year
//
// Both tables cover 1899-2100. The extra years on either side let a date in
// January 1900 resolve to lunar 1899 and keep the final lunar year complete.

// tableBaseYear is the year stored at index 0 of both tables.
const tableBaseYear = 1899

var lunarMonthDays = [...]uint32{
	0x0156a, 0x1096d, 0x0095c, 0x014ae, 0x0aa4d, 0x01a4c, 0x01b2a, 0x08d55, 0x00ad4, 0x0135a, // 1899
	0x0495d, 0x0095c, 0x0d49b, 0x0149a, 0x01a4a, 0x0baa5, 0x016a8, 0x01ad4, 0x052da, 0x012b6, // 1909
	0x0e937, 0x0092e, 0x01496, 0x0b64b, 0x00d4a, 0x00da8, 0x095b5, 0x0056c, 0x012ae, 0x0492f, // 1919
	0x0092e, 0x0cc96, 0x01a94, 0x01d4a, 0x0ada9, 0x00b5a, 0x0056c, 0x0726e, 0x0125c, 0x0f92d, // 1929
	0x0192a, 0x01a94, 0x0db4a, 0x016aa, 0x00ad4, 0x0955b, 0x004ba, 0x0125a, 0x0592b, 0x0152a, // 1939
	0x0f695, 0x00d94, 0x016aa, 0x0aab5, 0x009b4, 0x014b6, 0x06a57, 0x00a56, 0x1152a, 0x01d2a, // 1949
	0x00d54, 0x0d5aa, 0x0156a, 0x0096c, 0x094ae, 0x014ae, 0x00a4c, 0x07d26, 0x01b2a, 0x0eb55, // 1959
	0x00ad4, 0x012da, 0x0a95d, 0x0095a, 0x0149a, 0x09a4d, 0x01a4a, 0x11aa5, 0x016a8, 0x016d4, // 1969
	0x0d2da, 0x012b6, 0x00936, 0x09497, 0x01496, 0x1564b, 0x00d4a, 0x00da8, 0x0d5b4, 0x0156c, // 1979
	0x012ae, 0x0a92f, 0x0092e, 0x00c96, 0x06d4a, 0x01d4a, 0x10d65, 0x00b58, 0x0156c, 0x0b26d, // 1989
	0x0125c, 0x0192c, 0x09a95, 0x01a94, 0x01b4a, 0x04b55, 0x00ad4, 0x0f55b, 0x004ba, 0x0125a, // 1999
	0x0b92b, 0x0152a, 0x01694, 0x096aa, 0x015aa, 0x12ab5, 0x00974, 0x014b6, 0x0ca57, 0x00a56, // 2009
	0x01526, 0x08e95, 0x00d54, 0x015aa, 0x049b5, 0x0096c, 0x0d4ae, 0x0149c, 0x01a4c, 0x0bd26, // 2019
	0x01aa6, 0x00b54, 0x06d6a, 0x012da, 0x1695d, 0x0095a, 0x0149a, 0x0da4b, 0x01a4a, 0x01aa4, // 2029
	0x0bb54, 0x016b4, 0x00ada, 0x0495b, 0x00936, 0x0f497, 0x01496, 0x0154a, 0x0b6a5, 0x00da4, // 2039
	0x015b4, 0x06ab6, 0x0126e, 0x1092f, 0x0092e, 0x00c96, 0x0cd4a, 0x01d4a, 0x00d64, 0x0956c, // 2049
	0x0155c, 0x0125c, 0x0792e, 0x0192c, 0x0fa95, 0x01a94, 0x01b4a, 0x0ab55, 0x00ad4, 0x014da, // 2059
	0x08a5d, 0x00a5a, 0x1152b, 0x0152a, 0x01694, 0x0d6aa, 0x015aa, 0x00ab4, 0x094ba, 0x014b6, // 2069
	0x00a56, 0x07527, 0x00d26, 0x0ee53, 0x00d54, 0x015aa, 0x0a9b5, 0x0096c, 0x014ae, 0x08a4e, // 2079
	0x01a2c, 0x11d26, 0x01aa4, 0x01b54, 0x0cd6a, 0x00ada, 0x0095c, 0x0949d, 0x0145a, 0x01a2a, // 2089
	0x05b25, 0x01aa4,                                                                         // 2099
}

var solarNewYear = [...]uint32{
	0xed64a, 0xed83f, 0xeda53, 0xedc48, 0xede3d, 0xee050, 0xee244, 0xee439, 0xee64d, 0xee842,           // 1899
	0xeea36, 0xeec4a, 0xeee3e, 0xef052, 0xef246, 0xef43a, 0xef64e, 0xef843, 0xefa37, 0xefc4b,           // 1909
	0xefe41, 0xf0054, 0xf0248, 0xf043c, 0xf0650, 0xf0845, 0xf0a38, 0xf0c4d, 0xf0e42, 0xf1037,           // 1919
	0xf124a, 0xf143e, 0xf1651, 0xf1846, 0xf1a3a, 0xf1c4e, 0xf1e44, 0xf2038, 0xf224b, 0xf243f,           // 1929
	0xf2653, 0xf2848, 0xf2a3b, 0xf2c4f, 0xf2e45, 0xf3039, 0xf324d, 0xf3442, 0xf3636, 0xf384a,           // 1939
	0xf3a3d, 0xf3c51, 0xf3e46, 0xf403b, 0xf424e, 0xf4443, 0xf4638, 0xf484c, 0xf4a3f, 0xf4c52,           // 1949
	0xf4e48, 0xf503c, 0xf524f, 0xf5445, 0xf5639, 0xf584d, 0xf5a42, 0xf5c35, 0xf5e49, 0xf603e,           // 1959
	0xf6251, 0xf6446, 0xf663b, 0xf684f, 0xf6a43, 0xf6c37, 0xf6e4b, 0xf703f, 0xf7252, 0xf7447,           // 1969
	0xf763c, 0xf7850, 0xf7a45, 0xf7c39, 0xf7e4d, 0xf8042, 0xf8254, 0xf8449, 0xf863d, 0xf8851,           // 1979
	0xf8a46, 0xf8c3b, 0xf8e4f, 0xf9044, 0xf9237, 0xf944a, 0xf963f, 0xf9853, 0xf9a47, 0xf9c3c,           // 1989
	0xf9e50, 0xfa045, 0xfa238, 0xfa44c, 0xfa641, 0xfa836, 0xfaa49, 0xfac3d, 0xfae52, 0xfb047,           // 1999
	0xfb23a, 0xfb44e, 0xfb643, 0xfb837, 0xfba4a, 0xfbc3f, 0xfbe53, 0xfc048, 0xfc23c, 0xfc450,           // 2009
	0xfc645, 0xfc839, 0xfca4c, 0xfcc41, 0xfce36, 0xfd04a, 0xfd23d, 0xfd451, 0xfd646, 0xfd83a,           // 2019
	0xfda4d, 0xfdc43, 0xfde37, 0xfe04b, 0xfe23f, 0xfe453, 0xfe648, 0xfe83c, 0xfea4f, 0xfec44,           // 2029
	0xfee38, 0xff04c, 0xff241, 0xff436, 0xff64a, 0xff83e, 0xffa51, 0xffc46, 0xffe3a, 0x10004e,          // 2039
	0x100242, 0x100437, 0x10064b, 0x100841, 0x100a53, 0x100c48, 0x100e3c, 0x10104f, 0x101244, 0x101438, // 2049
	0x10164c, 0x101842, 0x101a35, 0x101c49, 0x101e3d, 0x102051, 0x102245, 0x10243a, 0x10264e, 0x102843, // 2059
	0x102a37, 0x102c4b, 0x102e3f, 0x103053, 0x103247, 0x10343b, 0x10364f, 0x103845, 0x103a38, 0x103c4c, // 2069
	0x103e42, 0x104036, 0x104249, 0x10443d, 0x104651, 0x104846, 0x104a3a, 0x104c4e, 0x104e43, 0x105038, // 2079
	0x10524a, 0x10543e, 0x105652, 0x105847, 0x105a3b, 0x105c4f, 0x105e45, 0x106039, 0x10624c, 0x106441, // 2089
	0x106635, 0x106849,                                                                                 // 2099
}

// extractBits returns width bits of packed starting at shift.
func extractBits(packed uint32, width, shift uint) uint32 {
	return (packed >> shift) & (1<<width - 1)
}

// tableIndex maps a year to its table slot. Callers range check first.
func tableIndex(year int) int {
	return year - tableBaseYear
}

// leapMonthOf decodes the leap month field of a month-length record.
func leapMonthOf(record uint32) int {
	return int(extractBits(record, 4, 13))
}

// slotDays decodes the length of month slot i (0-based) of a record.
func slotDays(record uint32, i int) int {
	if extractBits(record, 1, uint(12-i)) == 1 {
		return 30
	}
	return 29
}

// slotCount is 13 for a leap year and 12 otherwise.
func slotCount(record uint32) int {
	if leapMonthOf(record) != 0 {
		return 13
	}
	return 12
}

// decodeNewYear unpacks a solarNewYear record.
func decodeNewYear(record uint32) (year, month, day int) {
	return int(extractBits(record, 12, 9)), int(extractBits(record, 4, 5)), int(extractBits(record, 5, 0))
}

// packSolar packs a date the same way solarNewYear does, so records compare
// in date order.
func packSolar(year, month, day int) uint32 {
	return uint32(year)<<9 | uint32(month)<<5 | uint32(day)
}
