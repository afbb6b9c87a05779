package calendar

// Sexagenary cycle constants. Lunar year 4 AD was 甲子, the first year of a
// cycle; every lunar year after it advances one stem and one branch.
const (
	cycleReferenceYear = 4
	cycleLength        = 60
)

var (
	heavenlyStems   = [10]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
	earthlyBranches = [12]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}
	zodiacAnimals   = [12]string{"鼠", "牛", "虎", "兔", "龙", "蛇", "马", "羊", "猴", "鸡", "狗", "猪"}
)

// CycleIndex returns the position (0-59) of a lunar year in the sexagenary
// cycle, 0 being 甲子.
//
// Examples:
//   - 1984 (甲子): 0
//   - 2023 (癸卯): 39
func CycleIndex(lunarYear int) int {
	i := (lunarYear - cycleReferenceYear) % cycleLength
	if i < 0 {
		i += cycleLength
	}
	return i
}

// YearGanZhi returns the stem-branch name of a lunar year, e.g. 癸卯.
func YearGanZhi(lunarYear int) string {
	i := CycleIndex(lunarYear)
	return heavenlyStems[i%10] + earthlyBranches[i%12]
}

// Zodiac returns the zodiac animal of a lunar year.
func Zodiac(lunarYear int) string {
	return zodiacAnimals[CycleIndex(lunarYear)%12]
}
