package catalog

// hitboxForID returns the hitbox shape and base (pre-scale) width/height for
// a raw object id. Ranges and exact dimensions are ported id-for-id from the
// original level-object table; ids outside the table default to a 30x30
// rectangle, which is also the fallback GD itself uses for unrecognized
// editor objects.
func hitboxForID(id int) (HitboxShape, float32, float32) {
	switch {
	// Blocks
	case in(id, 1, 4) || in(id, 6, 7) || id == 63 || in(id, 69, 72) || in(id, 74, 78) ||
		in(id, 81, 83) || in(id, 90, 96) || in(id, 116, 119) || in(id, 121, 122) || id == 146 ||
		in(id, 160, 163) || in(id, 165, 169) || id == 173 || id == 175 || in(id, 207, 210) ||
		in(id, 212, 213) || in(id, 247, 250) || in(id, 252, 258) || in(id, 260, 261) ||
		in(id, 263, 265) || in(id, 267, 272) || in(id, 274, 275) || id == 467 || in(id, 469, 471) ||
		in(id, 1203, 1204) || in(id, 1209, 1210) || in(id, 1221, 1222) || id == 1226:
		return Rectangle, 30, 30
	case id == 64 || id == 195 || id == 206 || id == 220 || id == 661 || in(id, 1155, 1157) ||
		id == 1208 || id == 1910:
		return Rectangle, 15, 15
	case id == 40 || id == 147 || id == 215 || in(id, 369, 370) || in(id, 1903, 1905):
		return Rectangle, 30, 14
	case in(id, 170, 172) || id == 174 || id == 192:
		return Rectangle, 30, 21
	case id == 468 || id == 475 || id == 1260:
		return Rectangle, 30, 1.5
	case id == 62 || id == 65 || id == 66 || id == 68:
		return Rectangle, 30, 16
	case id == 1202 || id == 1262:
		return Rectangle, 30, 3
	case id == 1220 || id == 1264:
		return Rectangle, 30, 6
	case id == 196 || id == 219 || id == 1911:
		return Rectangle, 15, 8
	case id == 204:
		return Rectangle, 8, 15
	case in(id, 662, 664):
		return Rectangle, 30, 15
	case id == 1561:
		return Rectangle, 30, 10
	case id == 1567:
		return Rectangle, 15, 10
	case id == 1566:
		return Rectangle, 12, 12
	case id == 1565:
		return Rectangle, 17, 17
	case id == 1227:
		return Rectangle, 30, 7
	case id == 328:
		return Rectangle, 22, 22
	case id == 197:
		return Rectangle, 22, 21
	case id == 194:
		return Rectangle, 21, 21
	case id == 176:
		return Rectangle, 14, 21
	case id == 1562:
		return Rectangle, 30, 2
	case id == 1343:
		return Rectangle, 25, 3
	case id == 1340:
		return Rectangle, 27, 2
	case id == 34:
		return Rectangle, 37, 23
	case id == 143:
		return Rectangle, 30, 30

	// Spikes/hazards
	case id == 8 || id == 144 || id == 177 || id == 216:
		return Rectangle, 6, 12
	case id == 103 || id == 145 || id == 218:
		return Rectangle, 4, 7.6
	case id == 39 || id == 205 || id == 217:
		return Rectangle, 6, 5.6
	case id == 720 || id == 991 || id == 1731 || id == 1733:
		return Rectangle, 2.4, 3.2
	case id == 61 || id == 446 || id == 1719 || id == 1728:
		return Rectangle, 9, 7.2
	case id == 365 || id == 667 || id == 1716 || id == 1730:
		return Rectangle, 9, 6
	case id == 392 || in(id, 458, 459):
		return Rectangle, 2.6, 4.8
	case id == 768 || id == 1727:
		return Rectangle, 4.5, 5.2
	case id == 447 || id == 1729:
		return Rectangle, 5.2, 7.2
	case id == 135 || id == 1711:
		return Rectangle, 14.1, 20
	case id == 422 || id == 1726:
		return Rectangle, 6, 4.4
	case id == 244 || id == 1721:
		return Rectangle, 6, 6.8
	case id == 243 || id == 1720:
		return Rectangle, 6, 7.2
	case id == 421 || id == 1725:
		return Rectangle, 9, 5.2
	case id == 9 || id == 1715:
		return Rectangle, 9, 10.8
	case id == 989 || id == 1732:
		return Rectangle, 9, 12
	case id == 1714:
		return Rectangle, 11.4, 16.4
	case id == 1712:
		return Rectangle, 13.5, 22.4
	case id == 368 || id == 1722:
		return Rectangle, 9, 4
	case id == 1713:
		return Rectangle, 11.7, 20
	case id == 178:
		return Rectangle, 6, 6.4
	case id == 919:
		return Rectangle, 25, 6
	case id == 179:
		return Rectangle, 4, 8

	// Sawblades
	case id == 88 || id == 186 || id == 740 || id == 1705:
		return Circle, 32.3, 32.3
	case id == 89 || id == 1706:
		return Circle, 21.6, 21.6
	case id == 98 || id == 1707:
		return Circle, 12, 12
	case id == 183:
		return Circle, 15.66, 15.66
	case id == 184:
		return Circle, 20.4, 20.4
	case id == 185:
		return Circle, 2.85, 2.85
	case id == 187 || id == 741:
		return Circle, 21.96, 21.96
	case id == 188 || id == 742:
		return Circle, 12.6, 12.6
	case id == 397 || id == 1708:
		return Circle, 28.9, 28.9
	case id == 398 || id == 1709:
		return Circle, 17.44, 17.44
	case id == 399 || id == 1710:
		return Circle, 12.9, 12.9
	case id == 675 || id == 1734:
		return Circle, 32, 32
	case id == 676 || id == 1735:
		return Circle, 17.51, 17.51
	case id == 677 || id == 1736:
		return Circle, 12.48, 12.48
	case id == 678:
		return Circle, 30.4, 30.4
	case id == 679:
		return Circle, 18.54, 18.54
	case id == 680:
		return Circle, 10.8, 10.8
	case id == 918:
		return Circle, 24, 24
	case in(id, 1582, 1583):
		return Circle, 4, 4
	case id == 1619:
		return Circle, 25, 25
	case id == 1620:
		return Circle, 15, 15
	case in(id, 1701, 1703):
		return Circle, 6, 6

	// Pads
	case id == 35:
		return Rectangle, 25, 4
	case id == 140:
		return Rectangle, 25, 5
	case id == 67:
		return Rectangle, 25, 6

	// Orbs
	case id == 36 || id == 84 || id == 141:
		return Rectangle, 36, 36

	// Portals
	case id == 12 || id == 13 || id == 47 || id == 111 || id == 660:
		return Rectangle, 34, 86
	case id == 10 || id == 11:
		return Rectangle, 25, 75
	case id == 99 || id == 101:
		return Rectangle, 31, 90
	case id == 200:
		return Rectangle, 35, 44
	case id == 201:
		return Rectangle, 33, 56
	case id == 202:
		return Rectangle, 51, 56
	case id == 203:
		return Rectangle, 65, 56
	case id == 1334:
		return Rectangle, 69, 56

	// Slopes
	case isSlope30x30(id):
		return Rectangle, 30, 30
	case id == 363 || id == 1717:
		return Rectangle, 30, 30
	case isSlope60x30(id):
		return Rectangle, 60, 30
	case id == 364 || id == 366 || id == 1718:
		return Rectangle, 60, 30

	default:
		return Rectangle, 30, 30
	}
}

func isSlope30x30(id int) bool {
	switch id {
	case 289, 294, 299, 305, 309, 315, 321, 326, 331, 337, 343, 349, 353, 371, 483,
		492, 651, 665, 673, 709, 711, 726, 728, 886, 1338, 1341, 1344, 1723,
		1743, 1745, 1747, 1749, 1906:
		return true
	}
	return false
}

func isSlope60x30(id int) bool {
	switch id {
	case 291, 295, 301, 307, 311, 317, 323, 327, 333, 339, 345, 351, 355, 367, 372,
		484, 493, 652, 666, 674, 710, 712, 727, 729, 887, 1339, 1342, 1345, 1724,
		1744, 1746, 1748, 1750, 1907:
		return true
	}
	return false
}

// categoryForID returns the collision/terrain category for a raw object id.
func categoryForID(id int) Category {
	switch {
	case in(id, 1, 4) || in(id, 6, 7) || id == 63 || in(id, 69, 72) || in(id, 74, 78) ||
		in(id, 81, 83) || in(id, 90, 96) || in(id, 116, 119) || in(id, 121, 122) || id == 146 ||
		in(id, 160, 163) || in(id, 165, 169) || id == 173 || id == 175 || in(id, 207, 210) ||
		in(id, 212, 213) || in(id, 247, 250) || in(id, 252, 258) || in(id, 260, 261) ||
		in(id, 263, 265) || in(id, 267, 272) || in(id, 274, 275) || id == 467 || in(id, 469, 471) ||
		in(id, 1203, 1204) || in(id, 1209, 1210) || in(id, 1221, 1222) || id == 1226:
		return Solid
	case id == 64 || id == 195 || id == 206 || id == 220 || id == 661 || in(id, 1155, 1157) ||
		id == 1208 || id == 1910:
		return Solid
	case id == 40 || id == 147 || id == 215 || in(id, 369, 370) || in(id, 1903, 1905):
		return Solid
	case in(id, 170, 172) || id == 174 || id == 192:
		return Solid
	case id == 468 || id == 475 || id == 1260:
		return Solid
	case id == 62 || id == 65 || id == 66 || id == 68:
		return Solid
	case id == 1202 || id == 1262:
		return Solid
	case id == 1220 || id == 1264:
		return Solid
	case id == 196 || id == 219 || id == 1911:
		return Solid
	case id == 204:
		return Solid
	case in(id, 662, 664):
		return Solid
	case id == 1561 || id == 1567 || id == 1566 || id == 1565 || id == 1227 || id == 328 ||
		id == 197 || id == 194 || id == 176 || id == 1562 || id == 1343 || id == 1340 || id == 34:
		return Solid
	case id == 143:
		return Breakable

	// Spikes/hazards
	case id == 8 || id == 144 || id == 177 || id == 216 || id == 103 || id == 145 || id == 218 ||
		id == 39 || id == 205 || id == 217 || id == 720 || id == 991 || id == 1731 || id == 1733 ||
		id == 61 || id == 446 || id == 1719 || id == 1728 || id == 365 || id == 667 || id == 1716 ||
		id == 1730 || id == 392 || in(id, 458, 459) || id == 768 || id == 1727 || id == 447 ||
		id == 1729 || id == 135 || id == 1711 || id == 422 || id == 1726 || id == 244 || id == 1721 ||
		id == 243 || id == 1720 || id == 421 || id == 1725 || id == 9 || id == 1715 || id == 989 ||
		id == 1732 || id == 1714 || id == 1712 || id == 368 || id == 1722 || id == 1713 ||
		id == 178 || id == 919 || id == 179:
		return Hazard
	case id == 363 || id == 1717 || id == 364 || id == 366 || id == 1718:
		return Hazard

	// Sawblades
	case id == 88 || id == 186 || id == 740 || id == 1705 || id == 89 || id == 1706 ||
		id == 98 || id == 1707 || id == 183 || id == 184 || id == 185 || id == 187 || id == 741 ||
		id == 188 || id == 742 || id == 397 || id == 1708 || id == 398 || id == 1709 ||
		id == 399 || id == 1710 || id == 675 || id == 1734 || id == 676 || id == 1735 ||
		id == 677 || id == 1736 || id == 678 || id == 679 || id == 680 || id == 918 ||
		in(id, 1582, 1583) || id == 1619 || id == 1620 || in(id, 1701, 1703):
		return Sawblade

	// Portals
	case id == 11:
		return InverseGravityPortal
	case id == 10:
		return NormalGravityPortal
	case id == 13:
		return ShipPortal
	case id == 12:
		return CubePortal
	case id == 47, id == 111, id == 660, id == 99, id == 101:
		return Special
	case in(id, 200, 203) || id == 1334:
		return Special

	// Slopes
	case isSlope30x30(id) || isSlope60x30(id):
		return Slope

	// Pads
	case id == 35, id == 140, id == 67:
		return Pad

	// Orbs/rings
	case id == 36, id == 84, id == 141:
		return Ring

	default:
		return Unknown
	}
}

func in(id, lo, hi int) bool { return id >= lo && id <= hi }
