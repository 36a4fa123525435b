package forte

// The classification table as published in the source data, keyed by
// cardinality. Entry order matters: lookups by Forte number and Z-partner
// scans return the first match, and the table carries a handful of
// duplicate number assignments (two 3-11 forms, two 4-25/4-26 forms, two
// 6-35 forms) that must resolve the same way every run.
var forteTable = map[int][]Entry{
	1: { // 1 set
		{[]int{0}, "1-1"},
	},
	2: { // 6 sets
		{[]int{0, 1}, "2-1"},
		{[]int{0, 2}, "2-2"},
		{[]int{0, 3}, "2-3"},
		{[]int{0, 4}, "2-4"},
		{[]int{0, 5}, "2-5"},
		{[]int{0, 6}, "2-6"},
	},
	3: { // 12 numbers, 13 forms
		{[]int{0, 1, 2}, "3-1"},
		{[]int{0, 1, 3}, "3-2"},
		{[]int{0, 1, 4}, "3-3"},
		{[]int{0, 1, 5}, "3-4"},
		{[]int{0, 1, 6}, "3-5"},
		{[]int{0, 2, 4}, "3-6"},
		{[]int{0, 2, 5}, "3-7"},
		{[]int{0, 2, 6}, "3-8"},
		{[]int{0, 2, 7}, "3-9"},
		{[]int{0, 3, 6}, "3-10"},
		{[]int{0, 3, 7}, "3-11"},
		{[]int{0, 4, 7}, "3-11"},
		{[]int{0, 4, 8}, "3-12"},
	},
	4: { // 29 numbers, 31 forms
		{[]int{0, 1, 2, 3}, "4-1"},
		{[]int{0, 1, 2, 4}, "4-2"},
		{[]int{0, 1, 2, 5}, "4-3"},
		{[]int{0, 1, 2, 6}, "4-4"},
		{[]int{0, 1, 2, 7}, "4-5"},
		{[]int{0, 1, 3, 4}, "4-6"},
		{[]int{0, 1, 3, 5}, "4-7"},
		{[]int{0, 1, 3, 6}, "4-8"},
		{[]int{0, 1, 3, 7}, "4-9"},
		{[]int{0, 1, 4, 5}, "4-10"},
		{[]int{0, 1, 4, 6}, "4-11"},
		{[]int{0, 1, 4, 7}, "4-12"},
		{[]int{0, 1, 5, 6}, "4-13"},
		{[]int{0, 1, 5, 7}, "4-14"},
		{[]int{0, 1, 6, 7}, "4-15"},
		{[]int{0, 2, 3, 5}, "4-16"},
		{[]int{0, 2, 3, 6}, "4-17"},
		{[]int{0, 2, 3, 7}, "4-18"},
		{[]int{0, 2, 4, 6}, "4-19"},
		{[]int{0, 2, 4, 7}, "4-20"},
		{[]int{0, 2, 4, 8}, "4-21"},
		{[]int{0, 2, 5, 7}, "4-22"},
		{[]int{0, 2, 5, 8}, "4-23"},
		{[]int{0, 2, 6, 8}, "4-24"},
		{[]int{0, 3, 4, 7}, "4-25"},
		{[]int{0, 3, 5, 8}, "4-26"},
		{[]int{0, 3, 6, 9}, "4-27"},
		{[]int{0, 4, 5, 8}, "4-28"},
		{[]int{0, 4, 6, 10}, "4-29"},
		{[]int{0, 2, 5, 9}, "4-26"},
		{[]int{0, 1, 5, 8}, "4-25"},
	},
	5: { // 38 sets
		{[]int{0, 1, 2, 3, 4}, "5-1"},
		{[]int{0, 1, 2, 3, 5}, "5-2"},
		{[]int{0, 1, 2, 3, 6}, "5-3"},
		{[]int{0, 1, 2, 3, 7}, "5-4"},
		{[]int{0, 1, 2, 4, 5}, "5-5"},
		{[]int{0, 1, 2, 4, 6}, "5-6"},
		{[]int{0, 1, 2, 4, 7}, "5-7"},
		{[]int{0, 1, 2, 4, 8}, "5-8"},
		{[]int{0, 1, 2, 5, 6}, "5-9"},
		{[]int{0, 1, 2, 5, 7}, "5-10"},
		{[]int{0, 1, 2, 5, 8}, "5-11"},
		{[]int{0, 1, 2, 6, 7}, "5-12"},
		{[]int{0, 1, 2, 6, 8}, "5-13"},
		{[]int{0, 1, 2, 6, 9}, "5-14"},
		{[]int{0, 1, 3, 4, 5}, "5-15"},
		{[]int{0, 1, 3, 4, 6}, "5-16"},
		{[]int{0, 1, 3, 4, 7}, "5-17"},
		{[]int{0, 1, 3, 4, 8}, "5-18"},
		{[]int{0, 1, 3, 5, 6}, "5-19"},
		{[]int{0, 1, 3, 5, 7}, "5-20"},
		{[]int{0, 1, 3, 5, 8}, "5-21"},
		{[]int{0, 1, 3, 6, 7}, "5-22"},
		{[]int{0, 1, 3, 6, 8}, "5-23"},
		{[]int{0, 1, 3, 6, 9}, "5-24"},
		{[]int{0, 1, 4, 5, 6}, "5-25"},
		{[]int{0, 1, 4, 5, 7}, "5-26"},
		{[]int{0, 1, 4, 5, 8}, "5-27"},
		{[]int{0, 1, 4, 6, 7}, "5-28"},
		{[]int{0, 1, 4, 6, 8}, "5-29"},
		{[]int{0, 1, 4, 6, 9}, "5-30"},
		{[]int{0, 1, 5, 6, 7}, "5-31"},
		{[]int{0, 1, 5, 6, 8}, "5-32"},
		{[]int{0, 1, 5, 6, 9}, "5-33"},
		{[]int{0, 2, 3, 4, 6}, "5-34"},
		{[]int{0, 2, 3, 4, 7}, "5-35"},
		{[]int{0, 2, 3, 5, 7}, "5-36"},
		{[]int{0, 2, 3, 5, 8}, "5-37"},
		{[]int{0, 2, 4, 5, 8}, "5-38"},
	},
	6: { // 50 numbers, 51 forms
		{[]int{0, 1, 2, 3, 4, 5}, "6-1"},
		{[]int{0, 1, 2, 3, 4, 6}, "6-2"},
		{[]int{0, 1, 2, 3, 4, 7}, "6-3"},
		{[]int{0, 1, 2, 3, 5, 6}, "6-4"},
		{[]int{0, 1, 2, 3, 5, 7}, "6-5"},
		{[]int{0, 1, 2, 3, 5, 8}, "6-6"},
		{[]int{0, 1, 2, 3, 6, 7}, "6-7"},
		{[]int{0, 1, 2, 3, 6, 8}, "6-8"},
		{[]int{0, 1, 2, 3, 6, 9}, "6-9"},
		{[]int{0, 1, 2, 4, 5, 6}, "6-10"},
		{[]int{0, 1, 2, 4, 5, 7}, "6-11"},
		{[]int{0, 1, 2, 4, 5, 8}, "6-12"},
		{[]int{0, 1, 2, 4, 6, 7}, "6-13"},
		{[]int{0, 1, 2, 4, 6, 8}, "6-14"},
		{[]int{0, 1, 2, 4, 6, 9}, "6-15"},
		{[]int{0, 1, 2, 4, 7, 8}, "6-16"},
		{[]int{0, 1, 2, 5, 6, 7}, "6-17"},
		{[]int{0, 1, 2, 5, 6, 8}, "6-18"},
		{[]int{0, 1, 2, 5, 6, 9}, "6-19"},
		{[]int{0, 1, 2, 5, 7, 8}, "6-20"},
		{[]int{0, 1, 2, 6, 7, 8}, "6-21"},
		{[]int{0, 1, 2, 6, 7, 9}, "6-22"},
		{[]int{0, 1, 2, 6, 8, 10}, "6-23"},
		{[]int{0, 1, 3, 4, 5, 6}, "6-24"},
		{[]int{0, 1, 3, 4, 5, 7}, "6-25"},
		{[]int{0, 1, 3, 4, 5, 8}, "6-26"},
		{[]int{0, 1, 3, 4, 6, 7}, "6-27"},
		{[]int{0, 1, 3, 4, 6, 8}, "6-28"},
		{[]int{0, 1, 3, 4, 6, 9}, "6-29"},
		{[]int{0, 1, 3, 4, 7, 8}, "6-30"},
		{[]int{0, 1, 3, 5, 6, 7}, "6-31"},
		{[]int{0, 1, 3, 5, 6, 8}, "6-32"},
		{[]int{0, 1, 3, 5, 6, 9}, "6-33"},
		{[]int{0, 1, 3, 5, 7, 8}, "6-34"},
		{[]int{0, 1, 3, 6, 7, 8}, "6-35"},
		{[]int{0, 1, 3, 6, 7, 9}, "6-36"},
		{[]int{0, 1, 3, 6, 8, 9}, "6-37"},
		{[]int{0, 1, 4, 5, 6, 7}, "6-38"},
		{[]int{0, 1, 4, 5, 6, 8}, "6-39"},
		{[]int{0, 1, 4, 5, 6, 9}, "6-40"},
		{[]int{0, 1, 4, 5, 7, 8}, "6-41"},
		{[]int{0, 1, 4, 6, 7, 8}, "6-42"},
		{[]int{0, 1, 4, 6, 7, 9}, "6-43"},
		{[]int{0, 1, 4, 6, 8, 9}, "6-44"},
		{[]int{0, 1, 5, 6, 7, 8}, "6-45"},
		{[]int{0, 1, 5, 6, 7, 9}, "6-46"},
		{[]int{0, 1, 5, 6, 8, 9}, "6-47"},
		{[]int{0, 2, 3, 4, 5, 7}, "6-48"},
		{[]int{0, 2, 3, 4, 6, 8}, "6-49"},
		{[]int{0, 2, 3, 5, 6, 8}, "6-50"},
		{[]int{0, 2, 4, 6, 8, 10}, "6-35"},
	},
	7: { // 38 sets
		{[]int{0, 1, 2, 3, 4, 5, 6}, "7-1"},
		{[]int{0, 1, 2, 3, 4, 5, 7}, "7-2"},
		{[]int{0, 1, 2, 3, 4, 5, 8}, "7-3"},
		{[]int{0, 1, 2, 3, 4, 6, 7}, "7-4"},
		{[]int{0, 1, 2, 3, 4, 6, 8}, "7-5"},
		{[]int{0, 1, 2, 3, 4, 6, 9}, "7-6"},
		{[]int{0, 1, 2, 3, 5, 6, 7}, "7-7"},
		{[]int{0, 1, 2, 3, 5, 6, 8}, "7-8"},
		{[]int{0, 1, 2, 3, 5, 6, 9}, "7-9"},
		{[]int{0, 1, 2, 3, 5, 7, 8}, "7-10"},
		{[]int{0, 1, 2, 3, 6, 7, 8}, "7-11"},
		{[]int{0, 1, 2, 3, 6, 7, 9}, "7-12"},
		{[]int{0, 1, 2, 3, 6, 8, 9}, "7-13"},
		{[]int{0, 1, 2, 4, 5, 6, 7}, "7-14"},
		{[]int{0, 1, 2, 4, 5, 6, 8}, "7-15"},
		{[]int{0, 1, 2, 4, 5, 6, 9}, "7-16"},
		{[]int{0, 1, 2, 4, 5, 7, 8}, "7-17"},
		{[]int{0, 1, 2, 4, 6, 7, 8}, "7-18"},
		{[]int{0, 1, 2, 4, 6, 7, 9}, "7-19"},
		{[]int{0, 1, 2, 4, 6, 8, 9}, "7-20"},
		{[]int{0, 1, 2, 5, 6, 7, 8}, "7-21"},
		{[]int{0, 1, 2, 5, 6, 7, 9}, "7-22"},
		{[]int{0, 1, 2, 5, 6, 8, 9}, "7-23"},
		{[]int{0, 1, 2, 6, 7, 8, 9}, "7-24"},
		{[]int{0, 1, 3, 4, 5, 6, 7}, "7-25"},
		{[]int{0, 1, 3, 4, 5, 6, 8}, "7-26"},
		{[]int{0, 1, 3, 4, 5, 6, 9}, "7-27"},
		{[]int{0, 1, 3, 4, 5, 7, 8}, "7-28"},
		{[]int{0, 1, 3, 4, 6, 7, 8}, "7-29"},
		{[]int{0, 1, 3, 4, 6, 7, 9}, "7-30"},
		{[]int{0, 1, 3, 5, 6, 7, 8}, "7-31"},
		{[]int{0, 1, 3, 5, 6, 7, 9}, "7-32"},
		{[]int{0, 1, 4, 5, 6, 7, 8}, "7-33"},
		{[]int{0, 1, 4, 5, 6, 7, 9}, "7-34"},
		{[]int{0, 1, 4, 5, 6, 8, 9}, "7-35"},
		{[]int{0, 1, 5, 6, 7, 8, 9}, "7-36"},
		{[]int{0, 2, 3, 4, 5, 6, 8}, "7-37"},
		{[]int{0, 2, 3, 4, 5, 7, 9}, "7-38"},
	},
	8: { // 29 sets
		{[]int{0, 1, 2, 3, 4, 5, 6, 7}, "8-1"},
		{[]int{0, 1, 2, 3, 4, 5, 6, 8}, "8-2"},
		{[]int{0, 1, 2, 3, 4, 5, 6, 9}, "8-3"},
		{[]int{0, 1, 2, 3, 4, 5, 7, 8}, "8-4"},
		{[]int{0, 1, 2, 3, 4, 5, 7, 9}, "8-5"},
		{[]int{0, 1, 2, 3, 4, 6, 7, 8}, "8-6"},
		{[]int{0, 1, 2, 3, 4, 6, 7, 9}, "8-7"},
		{[]int{0, 1, 2, 3, 4, 6, 8, 9}, "8-8"},
		{[]int{0, 1, 2, 3, 5, 6, 7, 8}, "8-9"},
		{[]int{0, 1, 2, 3, 5, 6, 7, 9}, "8-10"},
		{[]int{0, 1, 2, 3, 5, 6, 8, 9}, "8-11"},
		{[]int{0, 1, 2, 3, 6, 7, 8, 9}, "8-12"},
		{[]int{0, 1, 2, 4, 5, 6, 7, 8}, "8-13"},
		{[]int{0, 1, 2, 4, 5, 6, 7, 9}, "8-14"},
		{[]int{0, 1, 2, 4, 5, 6, 8, 9}, "8-15"},
		{[]int{0, 1, 2, 4, 6, 7, 8, 9}, "8-16"},
		{[]int{0, 1, 2, 5, 6, 7, 8, 9}, "8-17"},
		{[]int{0, 1, 3, 4, 5, 6, 7, 8}, "8-18"},
		{[]int{0, 1, 3, 4, 5, 6, 7, 9}, "8-19"},
		{[]int{0, 1, 3, 4, 5, 6, 8, 9}, "8-20"},
		{[]int{0, 1, 3, 4, 6, 7, 8, 9}, "8-21"},
		{[]int{0, 1, 3, 5, 6, 7, 8, 9}, "8-22"},
		{[]int{0, 1, 4, 5, 6, 7, 8, 9}, "8-23"},
		{[]int{0, 2, 3, 4, 5, 6, 7, 8}, "8-24"},
		{[]int{0, 2, 3, 4, 5, 6, 7, 9}, "8-25"},
		{[]int{0, 2, 3, 4, 5, 6, 8, 9}, "8-26"},
		{[]int{0, 2, 3, 4, 5, 7, 8, 9}, "8-27"},
		{[]int{0, 2, 3, 4, 6, 7, 8, 9}, "8-28"},
		{[]int{0, 2, 4, 5, 6, 7, 8, 9}, "8-29"},
	},
	9: { // 12 sets
		{[]int{0, 1, 2, 3, 4, 5, 6, 7, 8}, "9-1"},
		{[]int{0, 1, 2, 3, 4, 5, 6, 7, 9}, "9-2"},
		{[]int{0, 1, 2, 3, 4, 5, 6, 8, 9}, "9-3"},
		{[]int{0, 1, 2, 3, 4, 5, 7, 8, 9}, "9-4"},
		{[]int{0, 1, 2, 3, 4, 6, 7, 8, 9}, "9-5"},
		{[]int{0, 1, 2, 3, 5, 6, 7, 8, 9}, "9-6"},
		{[]int{0, 1, 2, 4, 5, 6, 7, 8, 9}, "9-7"},
		{[]int{0, 1, 3, 4, 5, 6, 7, 8, 9}, "9-8"},
		{[]int{0, 2, 3, 4, 5, 6, 7, 8, 9}, "9-9"},
		{[]int{0, 1, 2, 3, 4, 5, 6, 7, 10}, "9-10"},
		{[]int{0, 1, 2, 3, 4, 5, 6, 8, 10}, "9-11"},
		{[]int{0, 1, 2, 3, 4, 5, 7, 8, 10}, "9-12"},
	},
	10: { // 6 sets
		{[]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, "10-1"},
		{[]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 10}, "10-2"},
		{[]int{0, 1, 2, 3, 4, 5, 6, 7, 9, 10}, "10-3"},
		{[]int{0, 1, 2, 3, 4, 5, 6, 8, 9, 10}, "10-4"},
		{[]int{0, 1, 2, 3, 4, 5, 7, 8, 9, 10}, "10-5"},
		{[]int{0, 1, 2, 3, 4, 6, 7, 8, 9, 10}, "10-6"},
	},
	11: { // 1 set
		{[]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, "11-1"},
	},
	12: { // 1 set
		{[]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, "12-1"},
	},
}
