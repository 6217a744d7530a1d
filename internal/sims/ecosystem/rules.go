package ecosystem

// Rule constants. Rates are per simulated year and are multiplied by the
// tick unit before each draw; thresholds are in years unless noted.
const (
	// Terrain generation.
	genRockFraction = 0.10
	genDirtCutoff   = 0.55
	genRiverCount   = 2
	genRangeCount   = 2
	genBandHalf     = 1

	// Terrain rules.
	erosionRadius         = 3
	grassSpreadRate       = 0.05
	grassSpreadWaterRate  = 0.20
	rockBreakdownTrees    = 3
	rockBreakdownYears    = 25.0
	dirtConsolidationRate = 0.1
	meanderRate           = 0.005
	meanderRunLength      = 3

	// Plants.
	sproutRate          = 1.0 / 200
	treeSaplingAge      = 3.0
	treeMatureAge       = 10.0
	seedDropRadius      = 3
	seedDropDirtRate    = 0.25
	seedDropRockDivisor = 5.0
	vineDeathExposure   = 10.0
	deadTreeDecayYears  = 6.0
	flowerBloomAge      = 1.0
	meadowBeesYears     = 3.0
	meadowSpreadRate    = 0.3
	meadowReclaimTrees  = 2
	meadowReclaimRate   = 0.3
	saplingOvertakeRate = 0.3

	// Vines.
	vineSpawnRate        = 0.01
	vineTreeRemovalRate  = 0.05
	vineSpreadAge        = 2.0
	vineSpreadRate       = 0.1
	vineMeadowRemoveRate = 0.0667

	// Fire.
	fireMatureIgniteRate = 0.33
	fireMeadowIgniteRate = 0.1
	fireVineIgniteRate   = 0.1667
	fireBurnYears        = 2.0
)

// cardinals lists the vine spread directions in draw order.
var cardinals = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
