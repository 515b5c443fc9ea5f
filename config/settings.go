// settings.go
package config

import "time"

const (
	/**
	[[COLLECTOR & SESSION SETTINGS]]
	*/

	//Game economy APIs
	EggShopAPI     = "https://ps99.biggamesapi.io/api/collection/Egg"
	CoinBalanceAPI = "https://economy.roblox.com/v1/user/currency"

	//Round budget: most coins one allocation round may spend
	RoundBudgetCap = 25000

	//Iteration Cycles
	RefreshRate     = 25                      //Reload egg tables after this many rounds
	TotalRounds     = 1000                    //Amount of rounds to run per session
	MonitorThrottle = 1500 * time.Millisecond //Base delay per round (plus up to 10% jitter)

	//Simulated memory reader (stand-in for direct process memory access)
	MemoryReaderMinCoins = 5000   //Lowest simulated coin balance
	MemoryReaderMaxCoins = 150000 //Highest simulated coin balance

	//Restock-cycle analysis
	RestockPeriod  = 12 //Rounds per presumed shop restock cycle (STL periodicity)
	LookbackRounds = 90 //Past rounds to consider for spend trend analysis

	//Roblox pages
	GameShopBaseURL = "https://www.roblox.com/games/8737899170/Pet-Simulator-99"
	RobloxHome      = "https://www.roblox.com/home"

	//Data Files
	ActionLogFile = "data/actions.log" //Log of all hatch orders
	RoundsFile    = "data/rounds.csv"  //Per-round spend records
	TablesFile    = "data/eggs.yaml"   //Egg catalog + priority table
	ChartFile     = "data/spend.png"   //Cumulative spend chart

	//CSS Selectors
	PriceSelector         = "span.text-robux-lg"                               //Displayed egg price
	BuyButtonSelector     = "button.shopping-cart-buy-button.PurchaseButton"   //Buy Button
	ConfirmButtonSelector = "button.modal-button.btn-primary-md.btn-min-width" //Confirm Button

	//Private Cookies
	RobloxCookie = ""

	//Web Agents
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
)
