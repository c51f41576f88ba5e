// Package cli provides the Cobra-based CLI for the catalog demo.
package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"product_catalog/domain"
	"product_catalog/session"
	"product_catalog/store"
	"product_catalog/view"
)

var (
	rootCmd = &cobra.Command{
		Use:   "catalog",
		Short: "An in-memory product catalog demo",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// IMPORTANT: allow tests to inject a session
			if sess != nil {
				return nil
			}

			// .env values become visible to viper's env binding
			_ = godotenv.Load()

			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}

			lvlStr := strings.ToLower(viper.GetString("log-level"))
			lvl := slog.LevelInfo
			switch lvlStr {
			case "debug":
				lvl = slog.LevelDebug
			case "warn", "warning":
				lvl = slog.LevelWarn
			case "error":
				lvl = slog.LevelError
			}
			slog.SetDefault(slog.New(
				slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}),
			))

			catalog, err := store.NewCatalogFromSource(viper.GetString("seed"))
			if err != nil {
				return err
			}
			if size := viper.GetInt("items-per-page"); size > 0 {
				catalog.SetItemsPerPage(size)
			}
			sess = session.New(catalog)
			slog.Debug("session started", "session_id", sess.ID.String())
			return nil
		},
	}

	sess *session.Session
)

func init() {
	// shell
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell mode (one session for the whole loop)",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("catalog> ")
				line, err := r.ReadString('\n')
				if err != nil {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				rootCmd.SetArgs(strings.Fields(line))
				if err := rootCmd.Execute(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
				rootCmd.SetArgs(nil)
				resetFlagChanged(rootCmd)
			}
		},
	}
	rootCmd.AddCommand(shellCmd)

	rootCmd.PersistentFlags().String("seed", store.SeedBuiltin, "seed source: builtin|<path to JSON file>")
	rootCmd.PersistentFlags().Int("items-per-page", 0, "initial page size (0 = default)")
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")

	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("items-per-page", rootCmd.PersistentFlags().Lookup("items-per-page"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("CATALOG")
	viper.AutomaticEnv()

	// products
	var pTab, pCategory, pSearch, pOutput string
	var pBrands []string
	var pMin, pMax, pRating float64
	var pInStock bool
	var pPage, pPerPage int
	productsCmd := &cobra.Command{
		Use:   "products",
		Short: "Show the current product page",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := sess.Catalog
			if cmd.Flags().Changed("category") {
				c.SetCategoryFilter(pCategory)
			}
			if cmd.Flags().Changed("min-price") || cmd.Flags().Changed("max-price") {
				r := c.State().Filters.PriceRange
				if cmd.Flags().Changed("min-price") {
					r.Low = pMin
				}
				if cmd.Flags().Changed("max-price") {
					r.High = pMax
				}
				c.SetPriceFilter(r)
			}
			if cmd.Flags().Changed("brands") {
				c.SetBrandsFilter(pBrands)
			}
			if cmd.Flags().Changed("rating") {
				c.SetRatingFilter(pRating)
			}
			if cmd.Flags().Changed("in-stock") {
				c.SetInStockFilter(pInStock)
			}
			if cmd.Flags().Changed("search") {
				c.SetSearchTerm(pSearch)
			}
			if cmd.Flags().Changed("per-page") {
				c.SetItemsPerPage(pPerPage)
			}
			if cmd.Flags().Changed("page") {
				c.SetCurrentPage(pPage)
			}

			tab := view.TabAll
			if pTab == string(view.TabFavorites) {
				tab = view.TabFavorites
			}
			proj := view.Project(c.State(), tab)

			if pOutput == "json" {
				b, _ := json.MarshalIndent(proj, "", "  ")
				fmt.Println(string(b))
				return nil
			}
			for _, p := range proj.Items {
				marker := " "
				if c.State().IsFavorite(p.ID) {
					marker = "*"
				}
				fmt.Printf("%s %d | %s | %s | %.2f | %.1f | %s | stock %d\n",
					marker, p.ID, p.Title, p.Brand, p.Price, p.Rating, p.Category, p.Stock)
			}
			fmt.Printf("page %d/%d | %d matched | %d favorites | %d categories | %d brands | max price %.2f\n",
				proj.Page, proj.TotalPages, proj.TotalFiltered, proj.TotalFavorites,
				proj.CategoryCount, proj.BrandCount, proj.MaxPrice)
			return nil
		},
	}
	productsCmd.Flags().StringVar(&pTab, "tab", "all", "tab: all|favorites")
	productsCmd.Flags().StringVar(&pCategory, "category", "", "category filter (\"all\" clears)")
	productsCmd.Flags().Float64Var(&pMin, "min-price", 0, "price range lower bound")
	productsCmd.Flags().Float64Var(&pMax, "max-price", 0, "price range upper bound")
	productsCmd.Flags().StringSliceVar(&pBrands, "brands", nil, "accepted brands (empty = all)")
	productsCmd.Flags().Float64Var(&pRating, "rating", 0, "minimum rating (0 = off)")
	productsCmd.Flags().BoolVar(&pInStock, "in-stock", false, "only in-stock products")
	productsCmd.Flags().StringVar(&pSearch, "search", "", "search term")
	productsCmd.Flags().IntVar(&pPage, "page", 1, "page number")
	productsCmd.Flags().IntVar(&pPerPage, "per-page", 0, "page size")
	productsCmd.Flags().StringVar(&pOutput, "output", "", "output format")
	rootCmd.AddCommand(productsCmd)

	// product
	productCmd := &cobra.Command{
		Use:   "product",
		Short: "Manage catalog products",
	}
	rootCmd.AddCommand(productCmd)

	// product add
	var aTitle, aDescription, aBrand, aThumbnail, aCategory string
	var aPrice, aRating, aDiscount float64
	var aStock int
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product (id is assigned by the catalog)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if aTitle == "" {
				return errors.New("title required")
			}
			data := domain.Product{
				Title:              aTitle,
				Description:        aDescription,
				Price:              aPrice,
				Brand:              aBrand,
				Thumbnail:          aThumbnail,
				Rating:             aRating,
				DiscountPercentage: aDiscount,
				Category:           aCategory,
				Stock:              aStock,
			}
			if err := domain.ValidateProduct(data); err != nil {
				return err
			}
			start := time.Now()
			created := sess.Catalog.AddProduct(data)
			slog.Info("product added", "product_id", created.ID, "duration_ms", time.Since(start).Milliseconds())
			b, _ := json.MarshalIndent(created, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}
	addCmd.Flags().StringVar(&aTitle, "title", "", "title")
	addCmd.Flags().StringVar(&aDescription, "description", "", "description")
	addCmd.Flags().Float64Var(&aPrice, "price", 0, "price")
	addCmd.Flags().StringVar(&aBrand, "brand", "", "brand")
	addCmd.Flags().StringVar(&aThumbnail, "thumbnail", "", "thumbnail URL")
	addCmd.Flags().Float64Var(&aRating, "rating", 0, "rating 0-5")
	addCmd.Flags().Float64Var(&aDiscount, "discount", 0, "discount percentage 0-100")
	addCmd.Flags().StringVar(&aCategory, "category", "", "category")
	addCmd.Flags().IntVar(&aStock, "stock", 0, "stock")
	productCmd.AddCommand(addCmd)

	// product update
	var uTitle, uDescription, uBrand, uThumbnail, uCategory string
	var uPrice, uRating, uDiscount float64
	var uStock int
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id: %s", args[0])
			}

			p, ok := sess.Catalog.State().FindProduct(id)
			if !ok {
				fmt.Fprintln(os.Stderr, domain.NewProductNotFoundError(id))
				return nil
			}

			if cmd.Flags().Changed("title") {
				p.Title = uTitle
			}
			if cmd.Flags().Changed("description") {
				p.Description = uDescription
			}
			if cmd.Flags().Changed("price") {
				p.Price = uPrice
			}
			if cmd.Flags().Changed("brand") {
				p.Brand = uBrand
			}
			if cmd.Flags().Changed("thumbnail") {
				p.Thumbnail = uThumbnail
			}
			if cmd.Flags().Changed("rating") {
				p.Rating = uRating
			}
			if cmd.Flags().Changed("discount") {
				p.DiscountPercentage = uDiscount
			}
			if cmd.Flags().Changed("category") {
				p.Category = uCategory
			}
			if cmd.Flags().Changed("stock") {
				p.Stock = uStock
			}

			if err := domain.ValidateProduct(p); err != nil {
				return err
			}

			start := time.Now()
			sess.Catalog.UpdateProduct(p)
			slog.Info("product updated", "product_id", id, "duration_ms", time.Since(start).Milliseconds())
			b, _ := json.MarshalIndent(p, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}
	updateCmd.Flags().StringVar(&uTitle, "title", "", "title")
	updateCmd.Flags().StringVar(&uDescription, "description", "", "description")
	updateCmd.Flags().Float64Var(&uPrice, "price", 0, "price")
	updateCmd.Flags().StringVar(&uBrand, "brand", "", "brand")
	updateCmd.Flags().StringVar(&uThumbnail, "thumbnail", "", "thumbnail URL")
	updateCmd.Flags().Float64Var(&uRating, "rating", 0, "rating 0-5")
	updateCmd.Flags().Float64Var(&uDiscount, "discount", 0, "discount percentage 0-100")
	updateCmd.Flags().StringVar(&uCategory, "category", "", "category")
	updateCmd.Flags().IntVar(&uStock, "stock", 0, "stock")
	productCmd.AddCommand(updateCmd)

	// product delete
	var force bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product (removes it from favorites and cart too)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id: %s", args[0])
			}
			if !force {
				fmt.Printf("Delete %d? (y/N): ", id)
				var resp string
				if _, err := fmt.Scanln(&resp); err != nil || (resp != "y" && resp != "Y") {
					fmt.Println("aborted")
					return nil
				}
			}
			sess.Catalog.DeleteProduct(id)
			fmt.Println("deleted")
			return nil
		},
	}
	deleteCmd.Flags().BoolVar(&force, "force", false, "skip confirmation")
	productCmd.AddCommand(deleteCmd)

	// product show
	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a product by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id: %s", args[0])
			}
			p, ok := sess.Catalog.State().FindProduct(id)
			if !ok {
				fmt.Fprintln(os.Stderr, domain.NewProductNotFoundError(id))
				return nil
			}
			out := struct {
				domain.Product
				DiscountedPrice decimal.Decimal `json:"discountedPrice"`
			}{Product: p, DiscountedPrice: p.DiscountedPrice()}
			b, _ := json.MarshalIndent(out, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}
	productCmd.AddCommand(showCmd)

	// favorite
	favoriteCmd := &cobra.Command{
		Use:   "favorite <id>",
		Short: "Toggle a product's favorite mark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id: %s", args[0])
			}
			sess.Catalog.ToggleFavorite(id)
			if sess.Catalog.State().IsFavorite(id) {
				fmt.Printf("favorited %d\n", id)
			} else {
				fmt.Printf("unfavorited %d\n", id)
			}
			return nil
		},
	}
	rootCmd.AddCommand(favoriteCmd)

	// cart
	cartCmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the session cart",
	}
	rootCmd.AddCommand(cartCmd)

	cartAddCmd := &cobra.Command{
		Use:   "add <id>",
		Short: "Add one unit of a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id: %s", args[0])
			}
			p, ok := sess.Catalog.State().FindProduct(id)
			if !ok {
				fmt.Fprintln(os.Stderr, domain.NewProductNotFoundError(id))
				return nil
			}
			sess.Catalog.AddToCart(p)
			fmt.Printf("added %d to cart\n", id)
			return nil
		},
	}
	cartCmd.AddCommand(cartAddCmd)

	cartRemoveCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a product's line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id: %s", args[0])
			}
			sess.Catalog.RemoveFromCart(id)
			fmt.Printf("removed %d from cart\n", id)
			return nil
		},
	}
	cartCmd.AddCommand(cartRemoveCmd)

	cartQtyCmd := &cobra.Command{
		Use:   "set-qty <id> <quantity>",
		Short: "Set a cart line's quantity (0 or less removes the line)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id: %s", args[0])
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity: %s", args[1])
			}
			sess.Catalog.UpdateCartQuantity(id, qty)
			return nil
		},
	}
	cartCmd.AddCommand(cartQtyCmd)

	var cartOutput string
	cartShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Show cart contents with totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary := view.SummarizeCart(sess.Catalog.State())
			if cartOutput == "json" {
				b, _ := json.MarshalIndent(summary, "", "  ")
				fmt.Println(string(b))
				return nil
			}
			for _, line := range summary.Lines {
				fmt.Printf("%d | %s | x%d | %s\n",
					line.Product.ID, line.Product.Title, line.Quantity, line.Total.StringFixed(2))
			}
			fmt.Printf("%d items | subtotal %s\n", summary.Items, summary.Subtotal.StringFixed(2))
			return nil
		},
	}
	cartShowCmd.Flags().StringVar(&cartOutput, "output", "", "output format")
	cartCmd.AddCommand(cartShowCmd)

	// clear-filters
	clearCmd := &cobra.Command{
		Use:   "clear-filters",
		Short: "Reset all filters and the search term",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess.Catalog.ClearFilters()
			fmt.Println("filters cleared")
			return nil
		},
	}
	rootCmd.AddCommand(clearCmd)
}

// resetFlagChanged clears the parsed-flag markers on cmd and all of its
// subcommands. Cobra keeps Changed set after Execute, so without this a
// shell command inherits the previous iteration's flags and re-dispatches
// transitions the user never asked for.
func resetFlagChanged(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlagChanged(sub)
	}
}

func Execute() error {
	return rootCmd.Execute()
}
