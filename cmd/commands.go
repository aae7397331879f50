package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"smart-clinic-portal/cmd/bootstrap"
	"smart-clinic-portal/config"
	"smart-clinic-portal/internal/client"
	"smart-clinic-portal/internal/delivery/dto"
	"smart-clinic-portal/internal/render"
	"smart-clinic-portal/pkg/response"

	"github.com/spf13/cobra"
)

// withPortal runs fn with a wired portal and closes it afterwards
func withPortal(cmd *cobra.Command, fn func(ctx context.Context, p *bootstrap.Portal) error) error {
	p, err := bootstrap.NewPortal(cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer p.Close()

	return fn(cmd.Context(), p)
}

func printRegion(out io.Writer, region *render.Region) {
	for _, fragment := range region.Fragments() {
		fmt.Fprintln(out, fragment)
	}
}

func resultErr(res response.Result) error {
	if res.Success {
		return nil
	}
	return errors.New(res.Message)
}

// doctorFilterFlags are shared by the admin and patient directory commands
type doctorFilterFlags struct {
	name      string
	time      string
	specialty string
}

func (f *doctorFilterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "search doctors by name")
	cmd.Flags().StringVar(&f.time, "time", "", "availability filter, AM or PM")
	cmd.Flags().StringVar(&f.specialty, "specialty", "", "specialty filter")
}

type directory interface {
	SetSearchText(ctx context.Context, text string) error
	SetTimeFilter(ctx context.Context, value string) error
	SetSpecialtyFilter(ctx context.Context, value string) error
}

// apply fires one filter event per flag given on the command line
func (f *doctorFilterFlags) apply(ctx context.Context, cmd *cobra.Command, d directory) error {
	if cmd.Flags().Changed("name") {
		if err := d.SetSearchText(ctx, f.name); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("time") {
		if err := d.SetTimeFilter(ctx, f.time); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("specialty") {
		if err := d.SetSpecialtyFilter(ctx, f.specialty); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// login
// =============================================================================

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
	}

	var username, email, password string

	admin := &cobra.Command{
		Use:   "admin",
		Short: "Log in as admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPortal(cmd, func(ctx context.Context, p *bootstrap.Portal) error {
				login := p.Login()
				login.OpenAdminLogin()
				res := login.AdminLogin(ctx, &dto.AdminLoginRequest{Username: username, Password: password})
				return reportLogin(cmd.OutOrStdout(), p, res)
			})
		},
	}
	admin.Flags().StringVar(&username, "username", "", "admin username")
	admin.Flags().StringVar(&password, "password", "", "admin password")

	doctor := &cobra.Command{
		Use:   "doctor",
		Short: "Log in as doctor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPortal(cmd, func(ctx context.Context, p *bootstrap.Portal) error {
				login := p.Login()
				login.OpenDoctorLogin()
				res := login.DoctorLogin(ctx, &dto.LoginRequest{Email: email, Password: password})
				return reportLogin(cmd.OutOrStdout(), p, res)
			})
		},
	}
	doctor.Flags().StringVar(&email, "email", "", "doctor email")
	doctor.Flags().StringVar(&password, "password", "", "doctor password")

	patient := &cobra.Command{
		Use:   "patient",
		Short: "Log in as patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPortal(cmd, func(ctx context.Context, p *bootstrap.Portal) error {
				dashboard := p.PatientDashboard(render.NewRegion("content"))
				dashboard.OpenLogin()
				res := dashboard.Login(ctx, &dto.LoginRequest{Email: email, Password: password})
				return reportLogin(cmd.OutOrStdout(), p, res)
			})
		},
	}
	patient.Flags().StringVar(&email, "email", "", "patient email")
	patient.Flags().StringVar(&password, "password", "", "patient password")

	cmd.AddCommand(admin, doctor, patient)
	return cmd
}

// reportLogin prints the session for the next invocation when it only
// lives in process memory
func reportLogin(out io.Writer, p *bootstrap.Portal, res response.Result) error {
	if err := resultErr(res); err != nil {
		return err
	}
	if p.Config.Session.Store == config.SessionStoreMemory {
		session, err := p.Sessions.Get(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "export SESSION_TOKEN=%s SESSION_ROLE=%s\n", client.TokenFrom(res), session.Role)
	}
	return nil
}

// =============================================================================
// admin
// =============================================================================

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin dashboard",
	}

	var filters doctorFilterFlags
	doctors := &cobra.Command{
		Use:   "doctors",
		Short: "List doctors, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPortal(cmd, func(ctx context.Context, p *bootstrap.Portal) error {
				region := render.NewRegion("content")
				dashboard := p.AdminDashboard(region, false)
				defer dashboard.Deactivate()

				if err := dashboard.Activate(ctx); err != nil {
					return err
				}
				if err := filters.apply(ctx, cmd, dashboard); err != nil {
					return err
				}
				printRegion(cmd.OutOrStdout(), region)
				return nil
			})
		},
	}
	filters.register(doctors)

	var form dto.CreateDoctorRequest
	addDoctor := &cobra.Command{
		Use:   "add-doctor",
		Short: "Add a doctor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPortal(cmd, func(ctx context.Context, p *bootstrap.Portal) error {
				region := render.NewRegion("content")
				dashboard := p.AdminDashboard(region, false)
				defer dashboard.Deactivate()

				if err := dashboard.Activate(ctx); err != nil {
					return err
				}
				dashboard.OpenAddDoctor()
				res := dashboard.AddDoctor(ctx, &form)
				printRegion(cmd.OutOrStdout(), region)
				return resultErr(res)
			})
		},
	}
	addDoctor.Flags().StringVar(&form.Name, "name", "", "doctor name")
	addDoctor.Flags().StringVar(&form.Specialty, "specialty", "", "specialty")
	addDoctor.Flags().StringVar(&form.Email, "email", "", "email")
	addDoctor.Flags().StringVar(&form.Password, "password", "", "initial password")
	addDoctor.Flags().StringVar(&form.MobileNo, "mobile", "", "mobile number")
	addDoctor.Flags().StringSliceVar(&form.Availability, "availability", nil, `availability slot such as "Monday 09:00-12:00" (repeatable)`)

	var yes bool
	deleteDoctor := &cobra.Command{
		Use:   "delete-doctor ID",
		Short: "Delete a doctor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid doctor id %q: %w", args[0], err)
			}

			return withPortal(cmd, func(ctx context.Context, p *bootstrap.Portal) error {
				region := render.NewRegion("content")
				dashboard := p.AdminDashboard(region, yes)
				defer dashboard.Deactivate()

				if err := dashboard.Activate(ctx); err != nil {
					return err
				}
				res := dashboard.DeleteDoctor(ctx, id)
				printRegion(cmd.OutOrStdout(), region)
				return resultErr(res)
			})
		},
	}
	deleteDoctor.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	cmd.AddCommand(doctors, addDoctor, deleteDoctor)
	return cmd
}

// =============================================================================
// doctor
// =============================================================================

func doctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Doctor dashboard",
	}

	var (
		date    string
		patient string
		today   bool
	)
	appointments := &cobra.Command{
		Use:   "appointments",
		Short: "List appointments for a day (today by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPortal(cmd, func(ctx context.Context, p *bootstrap.Portal) error {
				region := render.NewRegion("patientTableBody")
				dashboard := p.DoctorDashboard(region)
				defer dashboard.Deactivate()

				if err := dashboard.Activate(ctx); err != nil {
					return err
				}
				if cmd.Flags().Changed("patient") {
					if err := dashboard.SetPatientName(ctx, patient); err != nil {
						return err
					}
				}
				if cmd.Flags().Changed("date") {
					if err := dashboard.SelectDate(ctx, date); err != nil {
						return err
					}
				}
				if today {
					if err := dashboard.SelectToday(ctx); err != nil {
						return err
					}
				}
				printRegion(cmd.OutOrStdout(), region)
				return nil
			})
		},
	}
	appointments.Flags().StringVar(&date, "date", "", "day to show, YYYY-MM-DD")
	appointments.Flags().StringVar(&patient, "patient", "", "patient name filter")
	appointments.Flags().BoolVar(&today, "today", false, "show today")

	cmd.AddCommand(appointments)
	return cmd
}

// =============================================================================
// patient
// =============================================================================

func patientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patient",
		Short: "Patient dashboard",
	}

	var filters doctorFilterFlags
	doctors := &cobra.Command{
		Use:   "doctors",
		Short: "Browse doctors, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPortal(cmd, func(ctx context.Context, p *bootstrap.Portal) error {
				region := render.NewRegion("content")
				dashboard := p.PatientDashboard(region)
				defer dashboard.Deactivate()

				if err := dashboard.Activate(ctx); err != nil {
					return err
				}
				if err := filters.apply(ctx, cmd, dashboard); err != nil {
					return err
				}
				printRegion(cmd.OutOrStdout(), region)
				return nil
			})
		},
	}
	filters.register(doctors)

	var form dto.PatientSignupRequest
	signup := &cobra.Command{
		Use:   "signup",
		Short: "Register as a patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPortal(cmd, func(ctx context.Context, p *bootstrap.Portal) error {
				dashboard := p.PatientDashboard(render.NewRegion("content"))
				dashboard.OpenSignup()
				return resultErr(dashboard.Signup(ctx, &form))
			})
		},
	}
	signup.Flags().StringVar(&form.Name, "name", "", "full name")
	signup.Flags().StringVar(&form.Email, "email", "", "email")
	signup.Flags().StringVar(&form.Password, "password", "", "password")
	signup.Flags().StringVar(&form.Phone, "phone", "", "phone number")
	signup.Flags().StringVar(&form.Address, "address", "", "postal address")

	cmd.AddCommand(doctors, signup)
	return cmd
}
