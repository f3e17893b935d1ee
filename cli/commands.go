// Package cli provides the Cobra-based CLI for the textile inventory.
package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"inventario-textil/domain"
	"inventario-textil/facade"
	"inventario-textil/notify"
	"inventario-textil/store"
	"inventario-textil/validation"
)

var (
	rootCmd = &cobra.Command{
		Use:   "inventario",
		Short: "Sistema de inventario textil",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// IMPORTANT: allow tests to inject the facade
			if inv != nil {
				return nil
			}

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

			estrategia, err := validation.NewStrategy(viper.GetString("validation"))
			if err != nil {
				return err
			}

			archivo, err := notify.NewArchivo(viper.GetString("log-file"))
			if err != nil {
				return err
			}

			inv = facade.New(store.NewMemoria(), estrategia, archivo)
			if viper.GetBool("notify-console") {
				inv.AgregarObservador(notify.NewConsola(os.Stdout))
			}
			return nil
		},
	}

	inv *facade.Inventario
)

func init() {
	rootCmd.PersistentFlags().String("validation", "basica", "estrategia de validacion: basica|estricta")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")
	rootCmd.PersistentFlags().String("log-file", "inventario.log", "archivo de eventos")
	rootCmd.PersistentFlags().Bool("notify-console", false, "notificaciones por consola")
	rootCmd.PersistentFlags().String("config", "", "config file")

	viper.BindPFlag("validation", rootCmd.PersistentFlags().Lookup("validation"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag("notify-console", rootCmd.PersistentFlags().Lookup("notify-console"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.SetEnvPrefix("INVENTARIO")
	viper.AutomaticEnv()

	// shell
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Modo interactivo",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("inventario> ")
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
			}
		},
	}
	rootCmd.AddCommand(shellCmd)

	// create
	var codigo, nombre, tipo, color string
	var precio float64
	var stock int
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Crear un producto",
		RunE: func(cmd *cobra.Command, args []string) error {
			if codigo == "" {
				return errors.New("--codigo requerido")
			}
			tipoTela, err := domain.TipoTelaDesdeTexto(tipo)
			if err != nil {
				return err
			}
			start := time.Now()
			p, err := inv.CrearProductoSimple(context.Background(), codigo, nombre, tipoTela, color, precio, stock)
			if err != nil {
				slog.Error("create fallo", "codigo", codigo, "error", err)
				return err
			}
			slog.Info("producto creado", "codigo", p.Codigo, "id", p.ID, "duration_ms", time.Since(start).Milliseconds())
			return imprimirJSON(p)
		},
	}
	createCmd.Flags().StringVar(&codigo, "codigo", "", "codigo")
	createCmd.Flags().StringVar(&nombre, "nombre", "", "nombre")
	createCmd.Flags().StringVar(&tipo, "tipo", "Algodón", "tipo de tela")
	createCmd.Flags().StringVar(&color, "color", "", "color")
	createCmd.Flags().Float64Var(&precio, "precio", 0, "precio")
	createCmd.Flags().IntVar(&stock, "stock", 0, "stock inicial")
	rootCmd.AddCommand(createCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get <codigo>",
		Short: "Buscar producto por codigo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := inv.BuscarProducto(context.Background(), args[0])
			if err != nil {
				if domain.IsNotFoundError(err) {
					fmt.Fprintln(os.Stderr, err)
					return nil
				}
				return err
			}
			return imprimirJSON(p)
		},
	}
	rootCmd.AddCommand(getCmd)

	// list
	var lTipo, lOutput string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Listar productos",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var out []domain.Producto
			var err error
			if lTipo != "" {
				var tipoTela domain.TipoTela
				tipoTela, err = domain.TipoTelaDesdeTexto(lTipo)
				if err != nil {
					return err
				}
				out, err = inv.ListarPorTipo(ctx, tipoTela)
			} else {
				out, err = inv.ListarTodos(ctx)
			}
			if err != nil {
				return err
			}
			return imprimirProductos(out, lOutput)
		},
	}
	listCmd.Flags().StringVar(&lTipo, "tipo", "", "filtrar por tipo de tela")
	listCmd.Flags().StringVar(&lOutput, "output", "", "output format: json")
	rootCmd.AddCommand(listCmd)

	// low-stock
	var lsOutput string
	lowStockCmd := &cobra.Command{
		Use:   "low-stock",
		Short: "Productos con stock bajo",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := inv.ListarStockBajo(context.Background())
			if err != nil {
				return err
			}
			return imprimirProductos(out, lsOutput)
		},
	}
	lowStockCmd.Flags().StringVar(&lsOutput, "output", "", "output format: json")
	rootCmd.AddCommand(lowStockCmd)

	// search
	var sColor bool
	var sOutput string
	searchCmd := &cobra.Command{
		Use:   "search <texto>",
		Short: "Buscar productos por nombre (o por color con --color)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var out []domain.Producto
			var err error
			if sColor {
				out, err = inv.BuscarPorColor(ctx, args[0])
			} else {
				out, err = inv.BuscarPorNombre(ctx, args[0])
			}
			if err != nil {
				return err
			}
			return imprimirProductos(out, sOutput)
		},
	}
	searchCmd.Flags().BoolVar(&sColor, "color", false, "buscar por color en vez de nombre")
	searchCmd.Flags().StringVar(&sOutput, "output", "", "output format: json")
	rootCmd.AddCommand(searchCmd)

	// stock-in
	stockInCmd := &cobra.Command{
		Use:   "stock-in <codigo> <cantidad>",
		Short: "Registrar entrada de stock",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cantidad, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("cantidad invalida: %s", args[1])
			}
			start := time.Now()
			if err := inv.RegistrarEntrada(context.Background(), args[0], cantidad); err != nil {
				slog.Error("entrada fallo", "codigo", args[0], "error", err)
				return err
			}
			slog.Info("entrada registrada", "codigo", args[0], "cantidad", cantidad, "duration_ms", time.Since(start).Milliseconds())
			fmt.Printf("Entrada registrada: %d unidades de %s\n", cantidad, args[0])
			return nil
		},
	}
	rootCmd.AddCommand(stockInCmd)

	// stock-out
	stockOutCmd := &cobra.Command{
		Use:   "stock-out <codigo> <cantidad>",
		Short: "Registrar salida de stock",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cantidad, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("cantidad invalida: %s", args[1])
			}
			if err := inv.RegistrarSalida(context.Background(), args[0], cantidad); err != nil {
				slog.Error("salida fallo", "codigo", args[0], "error", err)
				return err
			}
			fmt.Printf("Salida registrada: %d unidades de %s\n", cantidad, args[0])
			return nil
		},
	}
	rootCmd.AddCommand(stockOutCmd)

	// delete
	var force bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Eliminar (desactivar) un producto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id invalido: %s", args[0])
			}
			if !force {
				fmt.Printf("Eliminar %s? (y/N): ", args[0])
				var resp string
				if _, err := fmt.Scanln(&resp); err != nil || (resp != "y" && resp != "Y") {
					fmt.Println("cancelado")
					return nil
				}
			}
			encontrado, err := inv.EliminarProducto(context.Background(), id)
			if err != nil {
				return err
			}
			if !encontrado {
				fmt.Fprintf(os.Stderr, "producto no encontrado: id=%d\n", id)
				return nil
			}
			fmt.Println("eliminado")
			return nil
		},
	}
	deleteCmd.Flags().BoolVar(&force, "force", false, "omitir confirmacion")
	rootCmd.AddCommand(deleteCmd)

	// summary
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Resumen del inventario",
		RunE: func(cmd *cobra.Command, args []string) error {
			resumen, err := inv.Resumen(context.Background())
			if err != nil {
				return err
			}
			return imprimirJSON(resumen)
		},
	}
	rootCmd.AddCommand(summaryCmd)

	// stats
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Estadisticas por tipo de tela",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := inv.EstadisticasPorTipo(context.Background())
			if err != nil {
				return err
			}
			// stable order for display
			for _, tipo := range domain.TiposTela() {
				st, ok := stats[tipo]
				if !ok {
					continue
				}
				fmt.Printf("%s | cantidad=%d | stock=%d | valor=%.2f | precio promedio=%.2f\n",
					tipo.Nombre(), st.Cantidad, st.StockTotal, st.ValorTotal, st.PrecioPromedio)
			}
			return nil
		},
	}
	rootCmd.AddCommand(statsCmd)

	// top
	topCmd := &cobra.Command{
		Use:   "top [n]",
		Short: "Productos mas valiosos por valor de inventario",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 5
			if len(args) == 1 {
				var err error
				n, err = strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("n invalido: %s", args[0])
				}
			}
			out, err := inv.TopMasValiosos(context.Background(), n)
			if err != nil {
				return err
			}
			for _, p := range out {
				fmt.Printf("%s | %s | valor=%.2f\n", p.Codigo, p.Nombre, p.ValorInventario())
			}
			return nil
		},
	}
	rootCmd.AddCommand(topCmd)

	// report
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Reporte de inventario en texto",
		RunE: func(cmd *cobra.Command, args []string) error {
			reporte, err := inv.GenerarReporte(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(reporte)
			return nil
		},
	}
	rootCmd.AddCommand(reportCmd)

	// seed
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Cargar productos de demostracion",
		RunE: func(cmd *cobra.Command, args []string) error {
			creados, err := inv.CargarDemostracion(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("%d productos de demostracion creados\n", creados)
			return nil
		},
	}
	rootCmd.AddCommand(seedCmd)

	// import: JSON array or NDJSON, each product goes through the full
	// validate -> save -> notify pipeline
	var importFile string
	importCmd := &cobra.Command{
		Use:   "import --file <file>",
		Short: "Importar productos desde JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if importFile == "" {
				return errors.New("--file requerido")
			}

			b, err := os.ReadFile(importFile)
			if err != nil {
				return err
			}

			btrim := bytes.TrimSpace(b)
			if len(btrim) == 0 {
				return errors.New("archivo vacio")
			}

			var configs []domain.ProductoConfig
			if btrim[0] == '[' {
				if err := json.Unmarshal(btrim, &configs); err != nil {
					return err
				}
			} else {
				scanner := bufio.NewScanner(bytes.NewReader(btrim))
				for scanner.Scan() {
					line := bytes.TrimSpace(scanner.Bytes())
					if len(line) == 0 {
						continue
					}
					var cfg domain.ProductoConfig
					if err := json.Unmarshal(line, &cfg); err != nil {
						return err
					}
					configs = append(configs, cfg)
				}
				if err := scanner.Err(); err != nil {
					return err
				}
			}

			ctx := context.Background()
			var creados int
			for _, cfg := range configs {
				p, err := domain.NuevoProducto(cfg)
				if err != nil {
					fmt.Fprintf(os.Stderr, "codigo=%s: %v\n", cfg.Codigo, err)
					continue
				}
				if _, err := inv.CrearProducto(ctx, p); err != nil {
					fmt.Fprintf(os.Stderr, "codigo=%s: %v\n", cfg.Codigo, err)
					continue
				}
				creados++
			}
			fmt.Printf("%d de %d productos importados\n", creados, len(configs))
			return nil
		},
	}
	importCmd.Flags().StringVar(&importFile, "file", "", "archivo de entrada")
	rootCmd.AddCommand(importCmd)

	// export
	var exportFile, exportTipo string
	exportCmd := &cobra.Command{
		Use:   "export --file <file>",
		Short: "Exportar productos a JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if exportFile == "" {
				return errors.New("--file requerido")
			}
			ctx := context.Background()
			var out []domain.Producto
			var err error
			if exportTipo != "" {
				var tipoTela domain.TipoTela
				tipoTela, err = domain.TipoTelaDesdeTexto(exportTipo)
				if err != nil {
					return err
				}
				out, err = inv.ListarPorTipo(ctx, tipoTela)
			} else {
				out, err = inv.ListarTodos(ctx)
			}
			if err != nil {
				return err
			}
			b, _ := json.MarshalIndent(out, "", "  ")
			return os.WriteFile(exportFile, b, 0o644)
		},
	}
	exportCmd.Flags().StringVar(&exportFile, "file", "", "archivo de salida")
	exportCmd.Flags().StringVar(&exportTipo, "tipo", "", "filtrar por tipo de tela")
	rootCmd.AddCommand(exportCmd)
}

func imprimirJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func imprimirProductos(out []domain.Producto, formato string) error {
	if formato == "json" {
		return imprimirJSON(out)
	}
	for _, p := range out {
		fmt.Printf("%d | %s | %s | %s | %.2f | %d/%d | %s\n",
			p.ID, p.Codigo, p.Nombre, p.TipoTela, p.Precio,
			p.StockActual, p.StockMinimo, p.EstadoDeStock())
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
